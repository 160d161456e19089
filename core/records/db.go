package records

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MoraStok/apareo-con-actualizaciones/core/database"
	"github.com/MoraStok/apareo-con-actualizaciones/core/reconcile"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// createBatchSize bounds the rows sent per INSERT when saving a ledger.
const createBatchSize = 500

// debtRow is the table layout of a debt.
type debtRow struct {
	ID      int64           `gorm:"column:id;primaryKey;autoIncrement:false"`
	Surname string          `gorm:"column:surname;size:100"`
	Owed    decimal.Decimal `gorm:"column:owed;type:decimal(20,2)"`
}

// paymentRow is the table layout of a payment.
// RowID keeps same-day payments of one person in insertion order.
type paymentRow struct {
	RowID   uint            `gorm:"column:row_id;primaryKey;autoIncrement"`
	ID      int64           `gorm:"column:id;index"`
	Date    time.Time       `gorm:"column:date"`
	Surname string          `gorm:"column:surname;size:100"`
	Amount  decimal.Decimal `gorm:"column:amount;type:decimal(20,2)"`
}

// logRow is the table layout of one reconciliation message.
type logRow struct {
	RowID     uint      `gorm:"column:row_id;primaryKey;autoIncrement"`
	RunID     string    `gorm:"column:run_id;size:36;index"`
	Seq       int       `gorm:"column:seq"`
	Kind      string    `gorm:"column:kind;size:32"`
	Message   string    `gorm:"column:message;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

var (
	debtColumns    = []string{"id", "surname", "owed"}
	paymentColumns = []string{"id", "date", "surname", "amount"}
)

func loadDebtRows(ctx context.Context, db *gorm.DB, table string) ([]reconcile.Debt, error) {
	var rows []debtRow
	if err := db.WithContext(ctx).Table(table).Order("id").Find(&rows).Error; err != nil {
		return nil, describeTableErr(db, table, debtColumns, err)
	}

	debts := make([]reconcile.Debt, 0, len(rows))
	for _, r := range rows {
		debts = append(debts, reconcile.Debt{ID: r.ID, Surname: r.Surname, Owed: r.Owed})
	}
	return debts, nil
}

func loadPaymentRows(ctx context.Context, db *gorm.DB, table string) ([]reconcile.Payment, error) {
	var rows []paymentRow
	if err := db.WithContext(ctx).Table(table).Order("id, date, row_id").Find(&rows).Error; err != nil {
		return nil, describeTableErr(db, table, paymentColumns, err)
	}

	payments := make([]reconcile.Payment, 0, len(rows))
	for _, r := range rows {
		payments = append(payments, reconcile.Payment{
			ID:      r.ID,
			Date:    reconcile.DateOf(r.Date.UTC()),
			Surname: r.Surname,
			Amount:  r.Amount,
		})
	}
	return payments, nil
}

// saveDebtRows replaces the content of table with debts in a single transaction.
// The table is created when it does not exist.
func saveDebtRows(ctx context.Context, db *gorm.DB, table string, debts []reconcile.Debt) error {
	rows := make([]debtRow, 0, len(debts))
	for _, d := range debts {
		rows = append(rows, debtRow{ID: d.ID, Surname: d.Surname, Owed: d.Owed})
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(table).AutoMigrate(&debtRow{}); err != nil {
			return fmt.Errorf("failed to migrate table %s: %w", table, err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Table(table).Delete(&debtRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Table(table).CreateInBatches(&rows, createBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert into table %s: %w", table, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save debts to table %s: %w", table, err)
	}
	return nil
}

// describeTableErr names the missing columns when a failed query hit an incompatible table.
func describeTableErr(db *gorm.DB, table string, required []string, err error) error {
	missing, inspectErr := database.MissingColumns(db, table, required...)
	if inspectErr == nil && len(missing) > 0 {
		return fmt.Errorf("table %s lacks columns %s: %w", table, strings.Join(missing, ", "), err)
	}
	return fmt.Errorf("failed to query table %s: %w", table, err)
}
