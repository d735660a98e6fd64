// Package factory builds entities from raw records and resolves their explainers and validators.
package factory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/anyswap/xrpl-txmodel/ledger/entity"
	"github.com/anyswap/xrpl-txmodel/ledger/explain"
	"github.com/anyswap/xrpl-txmodel/ledger/object"
	"github.com/anyswap/xrpl-txmodel/ledger/txn"
	"github.com/anyswap/xrpl-txmodel/ledger/validate"
	"github.com/anyswap/xrpl-txmodel/log"
)

// errors
var (
	ErrUnrecognizedDiscriminant = errors.New("unrecognized discriminant")
	ErrExplainerNotFound        = errors.New("explainer not found")
	ErrValidatorNotFound        = errors.New("validator not found")
	ErrNotPseudo                = errors.New("not a pseudo transaction")
)

// entity kinds
const (
	KindTransaction       = "transaction"
	KindPseudoTransaction = "pseudo transaction"
	KindLedgerObject      = "ledger object"
)

// NotFoundError is a registry miss
type NotFoundError struct {
	Kind         string
	Discriminant string
	Err          error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v for %s %q", e.Err, e.Kind, e.Discriminant)
}

// Unwrap is the registry sentinel
func (e *NotFoundError) Unwrap() error {
	return e.Err
}

func notFound(err error, kind, discriminant string) error {
	return &NotFoundError{Kind: kind, Discriminant: discriminant, Err: err}
}

func resolve(tx txn.Transaction) txn.Transaction {
	if tx.Meta() == nil {
		return tx
	}
	if r, ok := tx.(txn.Resolver); ok {
		r.ResolveRelated()
	}
	return tx
}

// CreateTransaction binds a transaction of any type. Unmodelled types yield *txn.Unknown.
// Relationships found in meta are resolved before returning.
func CreateTransaction(raw entity.Record, meta *entity.Meta, source entity.Source) (txn.Transaction, error) {
	tx, err := txn.Parse(raw, meta, source)
	if err != nil {
		return nil, err
	}
	return resolve(tx), nil
}

// CreatePseudoTransaction binds a network generated transaction.
// A user transaction type is rejected with ErrNotPseudo.
func CreatePseudoTransaction(raw entity.Record, meta *entity.Meta, source entity.Source) (txn.Transaction, error) {
	txType := raw.String("TransactionType")
	if c, ok := txn.LookupPseudo(txType); ok {
		return c.Build(raw, meta, source)
	}
	if _, ok := txn.Lookup(txType); ok {
		return nil, fmt.Errorf("%w: %s", ErrNotPseudo, txType)
	}
	return txn.Parse(raw, meta, source)
}

// CreateLedgerObject binds a ledger entry. Unmodelled types yield *object.Unknown.
func CreateLedgerObject(raw entity.Record, source entity.Source) (object.Object, error) {
	return object.Parse(raw, source)
}

// CreateFromEnvelope accepts the shapes returned by rippled and explorers:
// {tx, meta}, a transaction carrying meta or metaData, or a bare draft.
func CreateFromEnvelope(raw entity.Record, source entity.Source) (txn.Transaction, error) {
	txRaw, metaRaw := entity.SplitEnvelope(raw)
	var meta *entity.Meta
	if metaRaw != nil {
		m, err := entity.NewMeta(metaRaw)
		if err != nil {
			return nil, err
		}
		meta = m
	}
	return CreateTransaction(txRaw, meta, source)
}

type explainers struct{}

// Explainers is the explainer registry
var Explainers explainers

// Get finds the explainer factory of a transaction type
func (explainers) Get(txType string) (explain.TxFactory, error) {
	f, ok := explain.ForTransaction(txType)
	if !ok {
		return nil, notFound(ErrExplainerNotFound, KindTransaction, txType)
	}
	return f, nil
}

// GetObject finds the explainer factory of a ledger entry type
func (explainers) GetObject(entryType string) (explain.ObjectFactory, error) {
	f, ok := explain.ForObject(entryType)
	if !ok {
		return nil, notFound(ErrExplainerNotFound, KindLedgerObject, entryType)
	}
	return f, nil
}

type validators struct{}

// Validators is the validator registry
var Validators validators

// Get finds the validator factory of a transaction type
func (validators) Get(txType string) (validate.Factory, error) {
	f, ok := validate.For(txType)
	if !ok {
		return nil, notFound(ErrValidatorNotFound, KindTransaction, txType)
	}
	return f, nil
}

func kindOf(tx txn.Transaction) string {
	if tx.IsPseudo() {
		return KindPseudoTransaction
	}
	return KindTransaction
}

// Explain explains a recognized transaction
func Explain(tx txn.Transaction, opts explain.Options) (*explain.Explanation, error) {
	if !tx.IsRecognized() {
		return nil, notFound(ErrUnrecognizedDiscriminant, kindOf(tx), tx.TransactionType())
	}
	f, err := Explainers.Get(tx.TransactionType())
	if err != nil {
		return nil, err
	}
	e, err := f(tx, opts)
	if err != nil {
		return nil, err
	}
	return explain.Explain(e), nil
}

// ExplainObject explains a recognized ledger entry
func ExplainObject(o object.Object, opts explain.Options) (*explain.Explanation, error) {
	if !o.IsRecognized() {
		return nil, notFound(ErrUnrecognizedDiscriminant, KindLedgerObject, o.LedgerEntryType())
	}
	f, err := Explainers.GetObject(o.LedgerEntryType())
	if err != nil {
		return nil, err
	}
	e, err := f(o, opts)
	if err != nil {
		return nil, err
	}
	return explain.Explain(e), nil
}

// Validate runs the semantic rules of a recognized transaction
func Validate(ctx context.Context, tx txn.Transaction, opts validate.Options) error {
	if !tx.IsRecognized() {
		return notFound(ErrUnrecognizedDiscriminant, kindOf(tx), tx.TransactionType())
	}
	if tx.IsPseudo() {
		return notFound(ErrValidatorNotFound, KindPseudoTransaction, tx.TransactionType())
	}
	f, err := Validators.Get(tx.TransactionType())
	if err != nil {
		return err
	}
	return f(opts).Validate(ctx, tx)
}

func missing(have func(string) bool, types []string) []string {
	var out []string
	for _, t := range types {
		if !have(t) {
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

// CheckConsistency verifies that every modelled type has its explainer and,
// for user transactions, its validator.
func CheckConsistency() error {
	var problems []string
	hasTxExplainer := func(t string) bool { _, ok := explain.ForTransaction(t); return ok }
	hasObjExplainer := func(t string) bool { _, ok := explain.ForObject(t); return ok }
	hasValidator := func(t string) bool { _, ok := validate.For(t); return ok }

	if m := missing(hasTxExplainer, append(txn.Types(), txn.PseudoTypes()...)); len(m) > 0 {
		problems = append(problems, "transactions without explainer: "+strings.Join(m, ","))
	}
	if m := missing(hasValidator, txn.Types()); len(m) > 0 {
		problems = append(problems, "transactions without validator: "+strings.Join(m, ","))
	}
	if m := missing(hasObjExplainer, object.Types()); len(m) > 0 {
		problems = append(problems, "ledger objects without explainer: "+strings.Join(m, ","))
	}
	for _, t := range txn.PseudoTypes() {
		if hasValidator(t) {
			problems = append(problems, "pseudo transaction with validator: "+t)
		}
	}
	if len(problems) > 0 {
		return errors.New("inconsistent registries: " + strings.Join(problems, "; "))
	}
	return nil
}

func init() {
	if err := CheckConsistency(); err != nil {
		panic(err)
	}
	log.Trace("registries checked", "transactions", len(txn.Types()), "pseudo", len(txn.PseudoTypes()), "objects", len(object.Types()))
}
