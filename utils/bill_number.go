package utils

import (
	"fmt"
	"time"
)

// GenBillNumber derives a bill number from the creation timestamp. Not
// collision-free under high concurrency; the unique index on bills catches
// the rare clash and the caller retries.
func GenBillNumber(t time.Time) string {
	return fmt.Sprintf("BILL%d", t.UnixMilli())
}
