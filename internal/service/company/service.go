// Package company provides company search and logo lookups.
package company

import (
	"context"
	"strings"

	"github.com/atharv2285/Stage-portdesign/internal/adapter/brandfetch"
	"github.com/atharv2285/Stage-portdesign/internal/config"
	"github.com/atharv2285/Stage-portdesign/internal/domain"
)

const maxResults = 10

// SearchAPI searches companies by name.
type SearchAPI interface {
	Search(ctx context.Context, query string) ([]brandfetch.SearchResult, error)
}

// Service exposes company search and logo URL construction.
type Service struct {
	cfg config.Config
	api SearchAPI
}

// NewService wires the company service.
func NewService(cfg config.Config, api SearchAPI) *Service {
	return &Service{cfg: cfg, api: api}
}

// Search returns up to maxResults normalized company hits. Hits without an
// icon fall back to a logo.dev URL for their domain.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Company, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.NewValidation("Company query parameter is required")
	}
	results, err := s.api.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	companies := make([]domain.Company, 0, len(results))
	for _, item := range results {
		icon := item.Icon
		if icon == "" {
			icon = s.LogoURL(item.Domain)
		}
		companies = append(companies, domain.Company{
			Name:        item.Name,
			Domain:      item.Domain,
			Icon:        icon,
			Description: item.Description,
			Industry:    item.Industry,
		})
		if len(companies) == maxResults {
			break
		}
	}
	return companies, nil
}

// LogoURL builds the logo.dev image URL for a company domain.
func (s *Service) LogoURL(domainName string) string {
	if s.cfg.LogoDevToken == "" {
		return "https://img.logo.dev/" + domainName
	}
	return "https://img.logo.dev/" + domainName + "?token=" + s.cfg.LogoDevToken
}

// Logo validates the domain parameter and returns the logo URL.
func (s *Service) Logo(domainName string) (string, error) {
	if strings.TrimSpace(domainName) == "" {
		return "", domain.NewValidation("Domain parameter is required")
	}
	return s.LogoURL(domainName), nil
}
