// Package validate checks transactions against rules spanning several fields or ledger entries.
//
// Validators may consult the ledger through a LedgerReader and therefore take a context.
// A rule violation is reported as a *SemanticError; any other error is an infrastructure failure.
package validate

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/anyswap/xrpl-txmodel/ledger/object"
	"github.com/anyswap/xrpl-txmodel/ledger/txn"
)

// rule violations
var (
	ErrMissingRelatedObject   = errors.New("referenced ledger object does not exist")
	ErrUnauthorizedCancel     = errors.New("only the source or destination may cancel before expiration")
	ErrUnauthorizedActor      = errors.New("account is not allowed to perform this operation")
	ErrNotExpired             = errors.New("object has not expired yet")
	ErrExpired                = errors.New("object has expired")
	ErrNotFinishable          = errors.New("escrow can not be finished yet")
	ErrNonPositiveAmount      = errors.New("amount must be positive")
	ErrSelfPayment            = errors.New("native payment to self")
	ErrDestinationIsSelf      = errors.New("destination is the sending account")
	ErrDestinationTagRequired = errors.New("destination requires a destination tag")
	ErrAmountExceedsLimit     = errors.New("amount exceeds the allowed maximum")
)

// infrastructure errors
var (
	ErrObjectNotFound = errors.New("ledger object not found")
	ErrNoLedgerReader = errors.New("validator needs a ledger reader")
	ErrTypeMismatch   = errors.New("validate: transaction type does not match its discriminant")
)

// SemanticError is a business rule violation, the only error meant for end users
type SemanticError struct {
	Reason string
	Err    error
}

func (e *SemanticError) Error() string {
	if e.Err == nil {
		return e.Reason
	}
	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

func (e *SemanticError) Unwrap() error { return e.Err }

func reject(err error, format string, args ...interface{}) error {
	return &SemanticError{Reason: fmt.Sprintf(format, args...), Err: err}
}

// IsSemantic reports whether err is a rule violation
func IsSemantic(err error) bool {
	var se *SemanticError
	return errors.As(err, &se)
}

// LedgerReader fetches standing ledger entries by index.
// Implementations return an error wrapping ErrObjectNotFound for absent entries.
type LedgerReader interface {
	LedgerEntry(ctx context.Context, index string) (object.Object, error)
}

// Validator checks one transaction
type Validator interface {
	Validate(ctx context.Context, tx txn.Transaction) error
}

// Options parameterize validators
type Options struct {
	Reader LedgerReader
	Now    func() time.Time
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// Factory builds the validator of one transaction type
type Factory func(opts Options) Validator

type ruleFunc func(ctx context.Context, tx txn.Transaction, opts Options) error

type validator struct {
	rule ruleFunc
	opts Options
}

// Validate impl Validator
func (v *validator) Validate(ctx context.Context, tx txn.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return v.rule(ctx, tx, v.opts)
}

var rules = map[string]ruleFunc{}

func register[T txn.Transaction](txType string, fn func(ctx context.Context, tx T, opts Options) error) bool {
	if _, exist := rules[txType]; exist {
		panic("validate: duplicate validator " + txType)
	}
	rules[txType] = func(ctx context.Context, tx txn.Transaction, opts Options) error {
		t, ok := tx.(T)
		if !ok {
			return fmt.Errorf("%w: %s is %T", ErrTypeMismatch, txType, tx)
		}
		return fn(ctx, t, opts)
	}
	return true
}

func passThrough(context.Context, txn.Transaction, Options) error { return nil }

// every user transaction type without a rule is accepted as is
func init() {
	for _, txType := range txn.Types() {
		if _, exist := rules[txType]; !exist {
			rules[txType] = passThrough
		}
	}
}

// For finds the validator factory of a transaction type.
// Pseudo transactions are never user signed and have none.
func For(txType string) (Factory, bool) {
	rule, ok := rules[txType]
	if !ok {
		return nil, false
	}
	return func(opts Options) Validator { return &validator{rule: rule, opts: opts} }, true
}

// Types lists the validated transaction types, sorted
func Types() []string {
	types := make([]string, 0, len(rules))
	for t := range rules {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// fetch reads the entry at index as a T; found is false when the ledger has no such entry
func fetch[T object.Object](ctx context.Context, opts Options, index string) (entry T, found bool, err error) {
	if opts.Reader == nil {
		return entry, false, ErrNoLedgerReader
	}
	o, err := opts.Reader.LedgerEntry(ctx, index)
	if errors.Is(err, ErrObjectNotFound) {
		return entry, false, nil
	}
	if err != nil {
		return entry, false, err
	}
	entry, ok := o.(T)
	if !ok {
		return entry, false, reject(ErrMissingRelatedObject, "entry %s is a %s", index, o.LedgerEntryType())
	}
	return entry, true, nil
}
