package ports

import "github.com/aalvaropc/contrastly/internal/domain"

// ReportStore persists contrast reports.
type ReportStore interface {
	SaveReport(r domain.Report) (id string, err error)
}
