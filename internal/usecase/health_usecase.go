package usecase

import "context"

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, error)
}

type healthUsecase struct {
	store Pinger
}

func NewHealthUsecase(store Pinger) HealthUsecase {
	return &healthUsecase{store: store}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, error) {
	status := map[string]string{"status": "ok", "store": "ok"}
	if u.store == nil {
		return status, nil
	}
	if err := u.store.Ping(ctx); err != nil {
		status["status"] = "degraded"
		status["store"] = "unreachable"
		return status, err
	}
	return status, nil
}
