package site

import "context"

type LeadRepository interface {
	CreateLead(ctx context.Context, lead *Lead) error
}
