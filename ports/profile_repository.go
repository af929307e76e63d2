package ports

import (
	"context"

	"tabprof/domain/core"
	"tabprof/domain/schema"
)

// ProfileRepository persists built dataset profiles
type ProfileRepository interface {
	Save(ctx context.Context, p *schema.Profile) error
	GetByID(ctx context.Context, id core.ProfileID) (*schema.Profile, error)
	List(ctx context.Context, limit, offset int) ([]*schema.Profile, error)
}
