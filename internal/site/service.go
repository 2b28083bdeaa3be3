package site

import (
	"context"
	"errors"
	"strings"
)

var ErrMissingContact = errors.New("name and email are required")

type Service struct {
	leads LeadRepository
}

func NewService(leads LeadRepository) *Service {
	return &Service{leads: leads}
}

func (s *Service) ListPlans() []Plan {
	return Plans
}

func (s *Service) CreateLead(ctx context.Context, name, email, phone, message string) (*Lead, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, ErrMissingContact
	}

	lead := &Lead{
		Name:    name,
		Email:   email,
		Phone:   strings.TrimSpace(phone),
		Message: strings.TrimSpace(message),
	}
	if err := s.leads.CreateLead(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}
