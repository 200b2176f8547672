package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"talentflow-backend/internal/domain"
	"talentflow-backend/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

const (
	ExportFormatXLSX = "xlsx"
	ExportFormatCSV  = "csv"

	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv"
)

var exportHeaders = []string{"NAME", "EMAIL", "STAGE", "JOB", "PHONE", "EXPERIENCE (YEARS)", "APPLIED AT"}

func exportRow(c domain.CandidateWithJob) []interface{} {
	jobTitle := ""
	if c.Job != nil {
		jobTitle = c.Job.Title
	}
	return []interface{}{
		c.Name,
		c.Email,
		c.Stage,
		jobTitle,
		c.Phone,
		c.Experience,
		c.CreatedAt.Format(time.RFC3339),
	}
}

// ExportCandidates renders every candidate matching filter, ignoring paging.
func (u *candidateUsecase) ExportCandidates(ctx context.Context, filter domain.CandidateFilter, format string) (*domain.CandidateExport, error) {
	if format == "" {
		format = ExportFormatXLSX
	}
	if format != ExportFormatXLSX && format != ExportFormatCSV {
		return nil, apperror.BadRequest("Unsupported export format: " + format)
	}

	candidates, _, err := u.candidateRepo.Fetch(ctx, domain.CandidateQuery{
		Search: filter.Search,
		Stage:  filter.Stage,
		JobID:  filter.JobID,
	})
	if err != nil {
		return nil, apperror.Wrap("Failed to export candidates", err)
	}
	joined, err := u.withJobs(ctx, candidates)
	if err != nil {
		return nil, apperror.Wrap("Failed to export candidates", err)
	}

	stamp := time.Now().Format("20060102_150405")
	if format == ExportFormatCSV {
		data, err := exportCSV(joined)
		if err != nil {
			return nil, apperror.Wrap("Failed to export candidates", err)
		}
		return &domain.CandidateExport{Data: data, Filename: "candidates_" + stamp + ".csv", ContentType: contentTypeCSV}, nil
	}

	data, err := exportExcel(joined)
	if err != nil {
		return nil, apperror.Wrap("Failed to export candidates", err)
	}
	return &domain.CandidateExport{Data: data, Filename: "candidates_" + stamp + ".xlsx", ContentType: contentTypeXLSX}, nil
}

func exportExcel(candidates []domain.CandidateWithJob) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Candidates"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	endCell, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, c := range candidates {
		for colIdx, value := range exportRow(c) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range exportHeaders {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 22)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func exportCSV(candidates []domain.CandidateWithJob) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeaders); err != nil {
		return nil, err
	}
	for _, c := range candidates {
		row := exportRow(c)
		record := make([]string, len(row))
		for i, v := range row {
			switch t := v.(type) {
			case string:
				record[i] = t
			case int:
				record[i] = strconv.Itoa(t)
			default:
				record[i] = fmt.Sprint(t)
			}
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
