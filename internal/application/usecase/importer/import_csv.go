// Package importer contains the CSV batch-import use case.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/rooseveltalej/WealthTrackAPI/internal/application/adapter"
	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
	domainerror "github.com/rooseveltalej/WealthTrackAPI/internal/domain/error"
)

// DataType discriminates what a CSV import contains.
type DataType string

const (
	DataTypeIncome          DataType = "income"
	DataTypeExpenses        DataType = "expenses"
	DataTypeSavings         DataType = "savings"
	DataTypeInvestments     DataType = "investments"
	DataTypeExpenseGoals    DataType = "expense_goals"
	DataTypeSavingGoals     DataType = "saving_goals"
	DataTypeInvestmentGoals DataType = "investment_goals"
)

// ImportCSVInput represents the input for a CSV import.
type ImportCSVInput struct {
	Email    string
	DataType DataType
	Content  []byte
}

// ImportCSVOutput represents the result of a successful import.
type ImportCSVOutput struct {
	Message  string
	Imported int
}

// ImportCSVUseCase parses and persists a CSV batch. The whole batch is
// all-or-nothing: a failure at any row leaves the store untouched.
type ImportCSVUseCase struct {
	userRepo   adapter.UserRepository
	importRepo adapter.ImportRepository
}

// NewImportCSVUseCase creates a new ImportCSVUseCase instance.
func NewImportCSVUseCase(userRepo adapter.UserRepository, importRepo adapter.ImportRepository) *ImportCSVUseCase {
	return &ImportCSVUseCase{
		userRepo:   userRepo,
		importRepo: importRepo,
	}
}

// Execute imports the CSV content for the user. Row numbers in errors are
// 1-based with the header as row 1, matching what the uploader sees.
func (uc *ImportCSVUseCase) Execute(ctx context.Context, input ImportCSVInput) (*ImportCSVOutput, error) {
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(input.Content) {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeInvalidEncoding,
			"invalid file encoding, expected UTF-8",
			domainerror.ErrInvalidEncoding,
		)
	}

	rows, err := readRows(input.Content)
	if err != nil {
		return nil, err
	}

	var imported int
	switch input.DataType {
	case DataTypeExpenses, DataTypeSavings, DataTypeInvestments:
		imported, err = uc.importRecords(ctx, user, recordKindFor(input.DataType), rows)
	case DataTypeIncome:
		imported, err = uc.importIncome(ctx, user, rows)
	case DataTypeExpenseGoals, DataTypeSavingGoals, DataTypeInvestmentGoals:
		imported, err = uc.importGoals(ctx, user, goalKindFor(input.DataType), rows)
	default:
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeInvalidImportDataType,
			fmt.Sprintf("invalid data type: %s", input.DataType),
			domainerror.ErrInvalidImportDataType,
		)
	}
	if err != nil {
		return nil, err
	}

	label := strings.ReplaceAll(string(input.DataType), "_", " ")
	return &ImportCSVOutput{
		Message:  fmt.Sprintf("%s imported successfully", capitalize(label)),
		Imported: imported,
	}, nil
}

// readRows splits the CSV content into data rows, skipping the header.
func readRows(content []byte) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(string(content)))
	reader.FieldsPerRecord = -1 // column counts are checked per row

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domainerror.NewImportError(
				domainerror.ErrCodeEmptyCSVFile,
				"csv file is empty",
				domainerror.ErrEmptyCSVFile,
			)
		}
		return nil, domainerror.NewRowError(1, "malformed header: %v", err)
	}

	var rows [][]string
	for i := 2; ; i++ {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, domainerror.NewRowError(i, "malformed row: %v", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (uc *ImportCSVUseCase) importRecords(ctx context.Context, user *entity.User, kind entity.TransactionKind, rows [][]string) (int, error) {
	transactions := make([]*entity.Transaction, 0, len(rows))
	for i, row := range rows {
		rowNum := i + 2
		if len(row) != 3 {
			return 0, domainerror.NewRowError(rowNum, "expected 3 columns, found %d", len(row))
		}
		date, amount, err := parseDateAmount(rowNum, row[0], row[1])
		if err != nil {
			return 0, err
		}
		category := strings.TrimSpace(row[2])
		if !entity.ValidCategory(kind, category) {
			return 0, domainerror.NewRowError(rowNum, "invalid %s category: %q", kind, category)
		}
		transactions = append(transactions, entity.NewTransaction(user.ID, kind, date, amount, category))
	}

	if err := uc.importRepo.ImportTransactions(ctx, kind, transactions); err != nil {
		return 0, domainerror.NewImportError(
			domainerror.ErrCodeImportFailed,
			"failed to import batch",
			err,
		)
	}
	return len(transactions), nil
}

func (uc *ImportCSVUseCase) importIncome(ctx context.Context, user *entity.User, rows [][]string) (int, error) {
	transactions := make([]*entity.Transaction, 0, len(rows))
	for i, row := range rows {
		rowNum := i + 2
		if len(row) != 2 {
			return 0, domainerror.NewRowError(rowNum, "expected 2 columns, found %d", len(row))
		}
		date, amount, err := parseDateAmount(rowNum, row[0], row[1])
		if err != nil {
			return 0, err
		}
		transactions = append(transactions, entity.NewTransaction(user.ID, entity.TransactionKindIncome, date, amount, ""))
	}

	if err := uc.importRepo.ImportIncome(ctx, transactions); err != nil {
		return 0, domainerror.NewImportError(
			domainerror.ErrCodeImportFailed,
			"failed to import batch",
			err,
		)
	}
	return len(transactions), nil
}

func (uc *ImportCSVUseCase) importGoals(ctx context.Context, user *entity.User, kind entity.GoalKind, rows [][]string) (int, error) {
	goals := make([]*entity.Goal, 0, len(rows))
	for i, row := range rows {
		rowNum := i + 2
		if len(row) != 2 {
			return 0, domainerror.NewRowError(rowNum, "expected 2 columns, found %d", len(row))
		}
		date, value, err := parseDateAmount(rowNum, row[0], row[1])
		if err != nil {
			return 0, err
		}
		goals = append(goals, entity.NewGoal(user.ID, kind, date, value))
	}

	if err := uc.importRepo.ImportGoals(ctx, kind, goals); err != nil {
		return 0, domainerror.NewImportError(
			domainerror.ErrCodeImportFailed,
			"failed to import batch",
			err,
		)
	}
	return len(goals), nil
}

func parseDateAmount(rowNum int, rawDate, rawAmount string) (time.Time, decimal.Decimal, error) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(rawDate))
	if err != nil {
		return time.Time{}, decimal.Zero, domainerror.NewRowError(rowNum, "invalid date %q, expected YYYY-MM-DD", strings.TrimSpace(rawDate))
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(rawAmount))
	if err != nil {
		return time.Time{}, decimal.Zero, domainerror.NewRowError(rowNum, "invalid amount %q", strings.TrimSpace(rawAmount))
	}
	return date, amount, nil
}

func recordKindFor(dataType DataType) entity.TransactionKind {
	switch dataType {
	case DataTypeExpenses:
		return entity.TransactionKindExpense
	case DataTypeSavings:
		return entity.TransactionKindSaving
	default:
		return entity.TransactionKindInvestment
	}
}

func goalKindFor(dataType DataType) entity.GoalKind {
	switch dataType {
	case DataTypeExpenseGoals:
		return entity.GoalKindExpense
	case DataTypeSavingGoals:
		return entity.GoalKindSaving
	default:
		return entity.GoalKindInvestment
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r)) + s[size:]
}
