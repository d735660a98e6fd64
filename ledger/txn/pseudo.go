package txn

import (
	"strconv"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
)

// pseudo transaction types
const (
	TypeEnableAmendment = "EnableAmendment"
	TypeSetFee          = "SetFee"
	TypeUNLModify       = "UNLModify"
)

// pseudo is embedded by transactions injected by validators rather than signed by accounts
type pseudo struct {
	Base
}

// IsPseudo impl Transaction
func (t *pseudo) IsPseudo() bool { return true }

var enableAmendmentFlags = codec.FlagTable{
	{Name: "tfGotMajority", Mask: 0x00010000},
	{Name: "tfLostMajority", Mask: 0x00020000},
}

var (
	enableAmendmentAmendment = entity.NewRequiredField("Amendment", codec.Hash256)
	enableAmendmentLedgerSeq = entity.NewField("LedgerSequence", codec.UInt32)

	_ = registerPseudo(NewSchema(TypeEnableAmendment, enableAmendmentFlags,
		enableAmendmentAmendment,
		enableAmendmentLedgerSeq,
	), func(b *entity.Binding) Transaction { return &EnableAmendment{pseudo{Base{b}}} })
)

// EnableAmendment tracks amendment voting; without flags the amendment is enabled
type EnableAmendment struct {
	pseudo
}

func (t *EnableAmendment) Amendment() string      { return enableAmendmentAmendment.Get(t.b) }
func (t *EnableAmendment) LedgerSequence() uint32 { return u32(enableAmendmentLedgerSeq.Get(t.b)) }

// Status is enabled, gotMajority or lostMajority
func (t *EnableAmendment) Status() string {
	flags := t.Flags()
	switch {
	case flags.Has("tfGotMajority"):
		return "gotMajority"
	case flags.Has("tfLostMajority"):
		return "lostMajority"
	default:
		return "enabled"
	}
}

var (
	setFeeBaseFee               = entity.NewField("BaseFee", codec.UInt64)
	setFeeReferenceFeeUnits     = entity.NewField("ReferenceFeeUnits", codec.UInt32)
	setFeeReserveBase           = entity.NewField("ReserveBase", codec.UInt32)
	setFeeReserveIncrement      = entity.NewField("ReserveIncrement", codec.UInt32)
	setFeeBaseFeeDrops          = entity.NewField("BaseFeeDrops", codec.AmountCodec)
	setFeeReserveBaseDrops      = entity.NewField("ReserveBaseDrops", codec.AmountCodec)
	setFeeReserveIncrementDrops = entity.NewField("ReserveIncrementDrops", codec.AmountCodec)
	setFeeLedgerSeq             = entity.NewField("LedgerSequence", codec.UInt32)

	_ = registerPseudo(NewSchema(TypeSetFee, nil,
		setFeeBaseFee,
		setFeeReferenceFeeUnits,
		setFeeReserveBase,
		setFeeReserveIncrement,
		setFeeBaseFeeDrops,
		setFeeReserveBaseDrops,
		setFeeReserveIncrementDrops,
		setFeeLedgerSeq,
	), func(b *entity.Binding) Transaction { return &SetFee{pseudo{Base{b}}} })
)

// SetFee records a fee and reserve change voted by validators
type SetFee struct {
	pseudo
}

// BaseFee is the reference transaction cost in native units
func (t *SetFee) BaseFee() *codec.Amount {
	if fee := setFeeBaseFeeDrops.Get(t.b); fee != nil {
		return fee
	}
	return dropsAmount(setFeeBaseFee.Get(t.b))
}

// ReserveBase is the account reserve in native units
func (t *SetFee) ReserveBase() *codec.Amount {
	if reserve := setFeeReserveBaseDrops.Get(t.b); reserve != nil {
		return reserve
	}
	return dropsAmount32(setFeeReserveBase.Get(t.b))
}

// ReserveIncrement is the owner reserve in native units
func (t *SetFee) ReserveIncrement() *codec.Amount {
	if inc := setFeeReserveIncrementDrops.Get(t.b); inc != nil {
		return inc
	}
	return dropsAmount32(setFeeReserveIncrement.Get(t.b))
}

func dropsAmount(drops *uint64) *codec.Amount {
	if drops == nil {
		return nil
	}
	amount, err := codec.AmountCodec.Decode(strconv.FormatUint(*drops, 10))
	if err != nil {
		return nil
	}
	return amount
}

func dropsAmount32(drops *uint32) *codec.Amount {
	if drops == nil {
		return nil
	}
	v := uint64(*drops)
	return dropsAmount(&v)
}

var (
	unlModifyDisabling = entity.NewRequiredField("UNLModifyDisabling", codec.UInt8)
	unlModifyValidator = entity.NewRequiredField("UNLModifyValidator", codec.Blob)
	unlModifyLedgerSeq = entity.NewField("LedgerSequence", codec.UInt32)

	_ = registerPseudo(NewSchema(TypeUNLModify, nil,
		unlModifyDisabling,
		unlModifyValidator,
		unlModifyLedgerSeq,
	), func(b *entity.Binding) Transaction { return &UNLModify{pseudo{Base{b}}} })
)

// UNLModify disables or re-enables a validator in the negative UNL
type UNLModify struct {
	pseudo
}

func (t *UNLModify) Validator() string      { return unlModifyValidator.Get(t.b) }
func (t *UNLModify) LedgerSequence() uint32 { return u32(unlModifyLedgerSeq.Get(t.b)) }

// IsDisabling is true when the validator is being disabled
func (t *UNLModify) IsDisabling() bool {
	v := unlModifyDisabling.Get(t.b)
	return v != nil && *v == 1
}
