package domain

// CollectionKey names one keyed collection in the persistent store.
type CollectionKey string

const (
	CollectionSales           CollectionKey = "sales"
	CollectionStock           CollectionKey = "stock"
	CollectionJournal         CollectionKey = "journal"
	CollectionChartOfAccounts CollectionKey = "chartOfAccounts"
	CollectionClosedShifts    CollectionKey = "closedShifts"
	CollectionDeletionLog     CollectionKey = "deletionLog"
)

// AllCollections lists every collection this service reads or writes.
func AllCollections() []CollectionKey {
	return []CollectionKey{
		CollectionSales,
		CollectionStock,
		CollectionJournal,
		CollectionChartOfAccounts,
		CollectionClosedShifts,
		CollectionDeletionLog,
	}
}
