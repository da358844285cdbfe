package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// It is populated by the concrete database package and injected at startup.
type RepositoryProvider struct {
	AccountRepo   AccountRepositoryFacade
	JournalRepo   JournalRepositoryFacade
	RecordRepo    BusinessRecordReader
	ReportingRepo ReportingRepository
}
