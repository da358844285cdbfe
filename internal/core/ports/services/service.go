package services

// ServiceContainer bundles the service facades handed to the HTTP layer.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Journal     JournalSvcFacade
	Journalizer JournalizerSvcFacade
	Reporting   ReportingSvcFacade
}
