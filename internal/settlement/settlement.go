// Package settlement implements the direct debit settlement engine.
//
// A settlement run determines which direct debits of a user are due on the
// current calendar day, checks the funding account of each one against its
// transaction ledger, writes a ledger entry for every covered payment and
// advances the schedule. Runs can also be simulated without writing
// anything, so that clients can warn the user before committing.
package settlement

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pennyflow/backend/internal/models"
	"github.com/pennyflow/backend/internal/notifications"
	"github.com/pennyflow/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service executes settlement runs.
type Service struct {
	dispatcher notifications.Dispatcher
}

// NewService returns a settlement service that sends notifications
// through the given dispatcher.
func NewService(dispatcher notifications.Dispatcher) *Service {
	return &Service{dispatcher: dispatcher}
}

// userLocks serializes settlement runs per user. Two concurrent runs for
// the same user would both read the ledger state from before the other
// run's writes and could overdraw an account.
var userLocks sync.Map

func lockUser(userID uuid.UUID) *sync.Mutex {
	mu, _ := userLocks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// dueToday reports whether a direct debit is due on the given day.
// Direct debits without a next date are never due.
func dueToday(directDebit models.DirectDebit, today types.Day) bool {
	return !directDebit.NextDate.IsZero() && directDebit.NextDate.Equal(today)
}

// loadRecords reads the user's active direct debits and all accounts.
//
// Accounts are loaded once per run and shared across all direct debits
// that are processed in it.
func loadRecords(db *gorm.DB, userID uuid.UUID) ([]models.DirectDebit, []models.Account, error) {
	var directDebits []models.DirectDebit
	err := db.Where(&models.DirectDebit{UserID: userID, Active: true}).Find(&directDebits).Error
	if err != nil {
		return nil, nil, fmt.Errorf("could not load direct debits: %w", err)
	}

	var accounts []models.Account
	err = db.Where(&models.Account{UserID: userID}).Find(&accounts).Error
	if err != nil {
		return nil, nil, fmt.Errorf("could not load accounts: %w", err)
	}

	return directDebits, accounts, nil
}

func findAccount(accounts []models.Account, id uuid.UUID) (models.Account, bool) {
	for _, account := range accounts {
		if account.ID == id {
			return account, true
		}
	}

	return models.Account{}, false
}

// ProcessDue executes a settlement run for the user.
//
// Due direct debits are processed strictly one after another so that every
// funds check observes the ledger writes of the payments settled before it
// in the same run. A failing direct debit never aborts the run, its failure
// is reported as part of the result. Only when the initial loads fail is an
// error returned.
func (s *Service) ProcessDue(ctx context.Context, userID uuid.UUID) (Result, error) {
	mu := lockUser(userID)
	mu.Lock()
	defer mu.Unlock()

	db := models.DB.WithContext(ctx)

	var user models.User
	err := db.First(&user, userID).Error
	if err != nil {
		return Result{}, err
	}

	directDebits, accounts, err := loadRecords(db, userID)
	if err != nil {
		return Result{}, err
	}

	settlementRuns.Inc()

	// The current day is captured once per run so that all due checks
	// within the run are consistent, even across midnight.
	today := types.DayOf(time.Now())

	var due []models.DirectDebit
	for _, directDebit := range directDebits {
		if dueToday(directDebit, today) {
			due = append(due, directDebit)
		}
	}

	result := Result{
		Successes: []Success{},
		Failures:  []Failure{},
	}

	if len(due) == 0 {
		result.Message = "No direct debits due today"
		return result, nil
	}

	for _, directDebit := range due {
		success, failure := s.processOne(db, user, directDebit, accounts, today)

		// The schedule advances regardless of the outcome: a failed direct
		// debit rolls over to the next period instead of being retried on
		// the same day.
		err := advance(db, directDebit, today)
		if err != nil {
			log.Error().Err(err).Str("direct-debit", directDebit.ID.String()).Msg("could not advance schedule")
		}

		if success != nil {
			result.Successes = append(result.Successes, *success)
			settlementsProcessed.Inc()
		}

		if failure != nil {
			result.Failures = append(result.Failures, *failure)
			settlementsFailed.WithLabelValues(string(failure.Kind)).Inc()
		}
	}

	result.TotalProcessed = len(result.Successes)
	result.TotalFailed = len(result.Failures)

	s.notify(ctx, user, result)

	return result, nil
}

// processOne attempts to settle a single direct debit.
//
// Exactly one of the return values is set. Errors never propagate out of
// this function, they are represented as Failures so that one direct
// debit cannot abort the run.
func (s *Service) processOne(db *gorm.DB, user models.User, directDebit models.DirectDebit, accounts []models.Account, today types.Day) (*Success, *Failure) {
	account, found := findAccount(accounts, directDebit.AccountID)
	if !found {
		return nil, &Failure{
			DirectDebit: directDebit,
			Kind:        FailureCardNotFound,
			Message:     fmt.Sprintf("the funding account for %s does not exist", directDebit.Name),
		}
	}

	if !directDebit.Amount.IsPositive() {
		return nil, &Failure{
			DirectDebit: directDebit,
			Kind:        FailureInvalidAmount,
			Message:     fmt.Sprintf("the amount for %s is not a positive number", directDebit.Name),
		}
	}

	funds, err := ResolveFunds(db, account, directDebit.Amount, user.Currency)
	if err != nil {
		return nil, &Failure{
			DirectDebit: directDebit,
			Kind:        FailureProcessingError,
			Message:     err.Error(),
		}
	}

	if !funds.Sufficient {
		available := funds.Available
		required := directDebit.Amount

		return nil, &Failure{
			DirectDebit: directDebit,
			Kind:        FailureInsufficientFunds,
			Message: fmt.Sprintf("%s needs %s, but only %s is available on %s",
				directDebit.Name,
				FormatAmount(required, user.Currency),
				funds.Display,
				account.DisplayName()),
			Available: &available,
			Required:  &required,
		}
	}

	category, err := models.CategoryFor(db, user.ID, directDebit.Name, directDebit.Category)
	if err != nil {
		return nil, &Failure{
			DirectDebit: directDebit,
			Kind:        FailureProcessingError,
			Message:     err.Error(),
		}
	}

	transaction := models.Transaction{
		UserID:        user.ID,
		AccountID:     account.ID,
		Amount:        directDebit.Amount.Neg(),
		Description:   fmt.Sprintf("Direct Debit: %s", directDebit.Name),
		Category:      category,
		Date:          today.InTime(),
		Type:          models.TransactionTypeDirectDebit,
		Status:        models.TransactionStatusCompleted,
		DirectDebitID: &directDebit.ID,
	}

	err = db.Create(&transaction).Error
	if err != nil {
		return nil, &Failure{
			DirectDebit: directDebit,
			Kind:        FailureTransactionFailed,
			Message:     err.Error(),
		}
	}

	return &Success{
		DirectDebit:   directDebit,
		TransactionID: transaction.ID,
		Amount:        directDebit.Amount,
		AccountName:   account.DisplayName(),
	}, nil
}

// advance moves the direct debit to its next occurrence and records the
// settlement attempt.
//
// The next date is always computed from the stored next date, never from
// the current day, so a direct debit that is processed late keeps its
// schedule.
func advance(db *gorm.DB, directDebit models.DirectDebit, today types.Day) error {
	directDebit.NextDate = directDebit.NextOccurrence()
	directDebit.LastPaymentDate = today

	return db.Model(&models.DirectDebit{DefaultModel: directDebit.DefaultModel}).
		Select("NextDate", "LastPaymentDate").
		Updates(directDebit).Error
}

// notify sends the outcome of a run to the user.
//
// Insufficient funds need the user to act and are sent with high priority,
// all other failures with medium priority. Dispatch errors are logged and
// discarded, they never change the outcome of the run.
func (s *Service) notify(ctx context.Context, user models.User, result Result) {
	if s.dispatcher == nil {
		return
	}

	dispatch := func(notification notifications.Notification) {
		err := s.dispatcher.Dispatch(ctx, user.ID, notification)
		if err != nil {
			log.Warn().Err(err).Str("user", user.ID.String()).Msg("could not dispatch notification")
		}
	}

	if len(result.Successes) > 0 {
		total := decimal.Zero
		for _, success := range result.Successes {
			total = total.Add(success.Amount)
		}

		dispatch(notifications.Notification{
			Title:    "Direct debits settled",
			Message:  fmt.Sprintf("%d direct debit(s) totalling %s were paid", len(result.Successes), FormatAmount(total, user.Currency)),
			Priority: notifications.PriorityLow,
			Data: map[string]string{
				"count": fmt.Sprint(len(result.Successes)),
				"total": total.StringFixed(2),
			},
		})
	}

	var insufficient, other []Failure
	for _, failure := range result.Failures {
		if failure.Kind == FailureInsufficientFunds {
			insufficient = append(insufficient, failure)
		} else {
			other = append(other, failure)
		}
	}

	if len(insufficient) > 0 {
		dispatch(notifications.Notification{
			Title:    "Direct debits failed: insufficient funds",
			Message:  fmt.Sprintf("%d direct debit(s) could not be paid because the funds were not sufficient", len(insufficient)),
			Priority: notifications.PriorityHigh,
			Data: map[string]string{
				"count": fmt.Sprint(len(insufficient)),
			},
		})
	}

	if len(other) > 0 {
		dispatch(notifications.Notification{
			Title:    "Direct debits failed",
			Message:  fmt.Sprintf("%d direct debit(s) could not be processed", len(other)),
			Priority: notifications.PriorityMedium,
			Data: map[string]string{
				"count": fmt.Sprint(len(other)),
			},
		})
	}
}

// SimulateToday previews the outcome of a settlement run without writing
// anything. Neither ledger entries are created nor schedules advanced, so
// simulating twice in a row yields the same result.
func (s *Service) SimulateToday(ctx context.Context, userID uuid.UUID) ([]Preview, error) {
	db := models.DB.WithContext(ctx)

	var user models.User
	err := db.First(&user, userID).Error
	if err != nil {
		return nil, err
	}

	directDebits, accounts, err := loadRecords(db, userID)
	if err != nil {
		return nil, err
	}

	today := types.DayOf(time.Now())

	previews := []Preview{}
	for _, directDebit := range directDebits {
		if !dueToday(directDebit, today) {
			continue
		}

		preview := Preview{
			DirectDebit: directDebit,
			Amount:      directDebit.Amount,
			Available:   FormatAmount(decimal.Zero, user.Currency),
		}

		account, found := findAccount(accounts, directDebit.AccountID)
		if !found {
			preview.Reason = "Funding account not found"
			previews = append(previews, preview)
			continue
		}

		preview.AccountName = account.DisplayName()

		if !directDebit.Amount.IsPositive() {
			preview.Reason = "Invalid amount"
			previews = append(previews, preview)
			continue
		}

		funds, err := ResolveFunds(db, account, directDebit.Amount, user.Currency)
		if err != nil {
			preview.Reason = "Could not determine available balance"
			previews = append(previews, preview)
			continue
		}

		preview.WillSucceed = funds.Sufficient
		preview.Available = funds.Display
		if funds.Sufficient {
			preview.Reason = "Sufficient funds"
		} else {
			preview.Reason = "Insufficient funds"
		}

		previews = append(previews, preview)
	}

	return previews, nil
}

// UpcomingWindow is the default number of days the upcoming query covers.
const UpcomingWindow = 30

// UpcomingPayments returns the user's active direct debits that are due
// within the window, sorted by date with the most imminent first.
func (s *Service) UpcomingPayments(ctx context.Context, userID uuid.UUID, windowDays int) ([]Upcoming, error) {
	if windowDays <= 0 {
		windowDays = UpcomingWindow
	}

	db := models.DB.WithContext(ctx)

	var directDebits []models.DirectDebit
	err := db.Where(&models.DirectDebit{UserID: userID, Active: true}).Find(&directDebits).Error
	if err != nil {
		return nil, err
	}

	today := types.DayOf(time.Now())
	end := today.AddDate(0, 0, windowDays)

	upcoming := []Upcoming{}
	for _, directDebit := range directDebits {
		if directDebit.NextDate.IsZero() {
			continue
		}

		if directDebit.NextDate.Before(today) || directDebit.NextDate.After(end) {
			continue
		}

		upcoming = append(upcoming, Upcoming{
			DirectDebit:      directDebit,
			DaysUntilPayment: today.DaysUntil(directDebit.NextDate),
		})
	}

	sort.Slice(upcoming, func(i, j int) bool {
		if !upcoming[i].DirectDebit.NextDate.Equal(upcoming[j].DirectDebit.NextDate) {
			return upcoming[i].DirectDebit.NextDate.Before(upcoming[j].DirectDebit.NextDate)
		}

		return upcoming[i].DirectDebit.Name < upcoming[j].DirectDebit.Name
	})

	return upcoming, nil
}
