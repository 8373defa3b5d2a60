package pagination

import "fmt"

// Validate validates pagination parameters against the configuration.
// Returns an error if:
//   - page is less than 1
//   - per_page is less than 1 or greater than config.MaxPerPage
func (p Params) Validate(config Config) error {
	if p.Page < 1 {
		return fmt.Errorf("page must be a positive integer")
	}
	if p.PerPage < 1 || p.PerPage > config.MaxPerPage {
		return fmt.Errorf("per_page must be between 1 and %d", config.MaxPerPage)
	}
	return nil
}

// WithDefaults applies default values from config to Params.
//
// Rules:
//   - If page <= 0, set to config.DefaultPage
//   - If per_page <= 0, set to config.DefaultPerPage
//   - If per_page > config.MaxPerPage, cap to config.MaxPerPage
func (p Params) WithDefaults(config Config) Params {
	if p.Page <= 0 {
		p.Page = config.DefaultPage
	}
	if p.PerPage <= 0 {
		p.PerPage = config.DefaultPerPage
	}
	if p.PerPage > config.MaxPerPage {
		p.PerPage = config.MaxPerPage
	}
	return p
}
