package services

import (
	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
	portsrepo "github.com/RusingAcademy/accounting-engine/internal/core/ports/repositories"
	portssvc "github.com/RusingAcademy/accounting-engine/internal/core/ports/services"
)

// NewServiceContainer wires the service layer from the repository provider
// and the system account set resolved at startup.
func NewServiceContainer(repos portsrepo.RepositoryProvider, system domain.SystemAccounts) *portssvc.ServiceContainer {
	accountSvc := NewAccountService(repos.AccountRepo)
	journalSvc := NewJournalService(repos.JournalRepo, accountSvc)
	journalizerSvc := NewJournalizerService(journalSvc, accountSvc, repos.RecordRepo, system)
	reportingSvc := NewReportingService(repos.ReportingRepo)

	return &portssvc.ServiceContainer{
		Account:     accountSvc,
		Journal:     journalSvc,
		Journalizer: journalizerSvc,
		Reporting:   reportingSvc,
	}
}
