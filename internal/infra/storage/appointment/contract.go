package appointment

import "github.com/millynails/MN-BookingService/pkg/txmanager"

// DBExecutor is the database surface the repository needs; it is satisfied
// by *sql.DB and, through the context executor, by *sql.Tx.
type DBExecutor = txmanager.DBExecutor
