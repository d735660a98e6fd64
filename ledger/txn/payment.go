package txn

import (
	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
)

// user transaction types
const (
	TypePayment        = "Payment"
	TypeTrustSet       = "TrustSet"
	TypeAccountSet     = "AccountSet"
	TypeAccountDelete  = "AccountDelete"
	TypeSetRegularKey  = "SetRegularKey"
	TypeSignerListSet  = "SignerListSet"
	TypeDepositPreauth = "DepositPreauth"
	TypeTicketCreate   = "TicketCreate"
)

var paymentFlags = codec.FlagTable{
	{Name: "tfNoRippleDirect", Mask: 0x00010000},
	{Name: "tfPartialPayment", Mask: 0x00020000},
	{Name: "tfLimitQuality", Mask: 0x00040000},
}

var (
	paymentDestination    = entity.NewRequiredField("Destination", codec.Account)
	paymentAmount         = entity.NewField("Amount", codec.AmountCodec)
	paymentDeliverMax     = entity.NewField("DeliverMax", codec.AmountCodec)
	paymentDestinationTag = entity.NewField("DestinationTag", codec.UInt32)
	paymentInvoiceID      = entity.NewField("InvoiceID", codec.Hash256)
	paymentSendMax        = entity.NewField("SendMax", codec.AmountCodec)
	paymentDeliverMin     = entity.NewField("DeliverMin", codec.AmountCodec)

	_ = register(NewSchema(TypePayment, paymentFlags,
		paymentDestination,
		paymentAmount,
		paymentDeliverMax,
		paymentDestinationTag,
		paymentInvoiceID,
		paymentSendMax,
		paymentDeliverMin,
	), func(b *entity.Binding) Transaction { return &Payment{Base: Base{b}} })
)

// Payment transfers value from Account to Destination
type Payment struct {
	Base
}

func (t *Payment) Destination() codec.Address { return paymentDestination.Get(t.b) }
func (t *Payment) DestinationTag() *uint32    { return paymentDestinationTag.Get(t.b) }
func (t *Payment) InvoiceID() string          { return paymentInvoiceID.Get(t.b) }
func (t *Payment) SendMax() *codec.Amount     { return paymentSendMax.Get(t.b) }
func (t *Payment) DeliverMin() *codec.Amount  { return paymentDeliverMin.Get(t.b) }

// Amount to deliver; API v2 renames the field DeliverMax
func (t *Payment) Amount() *codec.Amount {
	if amount := paymentAmount.Get(t.b); amount != nil {
		return amount
	}
	return paymentDeliverMax.Get(t.b)
}

// DeliveredAmount is the amount actually delivered per metadata, Amount otherwise
func (t *Payment) DeliveredAmount() *codec.Amount {
	if meta := t.Meta(); meta != nil && meta.DeliveredAmount != nil {
		return meta.DeliveredAmount
	}
	return t.Amount()
}

// IsPartial is true for partial payments
func (t *Payment) IsPartial() bool { return t.Flags().Has("tfPartialPayment") }

// IsCrossCurrency is true when the source spends a different asset than delivered
func (t *Payment) IsCrossCurrency() bool {
	sendMax := t.SendMax()
	return sendMax != nil && !sendMax.SameAsset(t.Amount())
}

var trustSetFlags = codec.FlagTable{
	{Name: "tfSetfAuth", Mask: 0x00010000},
	{Name: "tfSetNoRipple", Mask: 0x00020000},
	{Name: "tfClearNoRipple", Mask: 0x00040000},
	{Name: "tfSetFreeze", Mask: 0x00100000},
	{Name: "tfClearFreeze", Mask: 0x00200000},
}

var (
	trustSetLimitAmount = entity.NewRequiredField("LimitAmount", codec.AmountCodec)
	trustSetQualityIn   = entity.NewField("QualityIn", codec.UInt32)
	trustSetQualityOut  = entity.NewField("QualityOut", codec.UInt32)

	_ = register(NewSchema(TypeTrustSet, trustSetFlags,
		trustSetLimitAmount,
		trustSetQualityIn,
		trustSetQualityOut,
	), func(b *entity.Binding) Transaction { return &TrustSet{Base{b}} })
)

// TrustSet creates or modifies a trust line
type TrustSet struct {
	Base
}

func (t *TrustSet) LimitAmount() *codec.Amount { return trustSetLimitAmount.Get(t.b) }
func (t *TrustSet) QualityIn() *uint32         { return trustSetQualityIn.Get(t.b) }
func (t *TrustSet) QualityOut() *uint32        { return trustSetQualityOut.Get(t.b) }

// Issuer is the counterparty of the line
func (t *TrustSet) Issuer() codec.Address {
	if limit := t.LimitAmount(); limit != nil {
		return codec.Address(limit.Issuer)
	}
	return ""
}

// IsRemoval is true when the limit is set to zero
func (t *TrustSet) IsRemoval() bool {
	limit := t.LimitAmount()
	return limit != nil && limit.IsZero()
}

var accountSetFlags = codec.FlagTable{
	{Name: "tfRequireDestTag", Mask: 0x00010000},
	{Name: "tfOptionalDestTag", Mask: 0x00020000},
	{Name: "tfRequireAuth", Mask: 0x00040000},
	{Name: "tfOptionalAuth", Mask: 0x00080000},
	{Name: "tfDisallowXRP", Mask: 0x00100000},
	{Name: "tfAllowXRP", Mask: 0x00200000},
}

// AccountSet SetFlag/ClearFlag values
var accountSetFlagNames = map[uint32]string{
	1:  "asfRequireDest",
	2:  "asfRequireAuth",
	3:  "asfDisallowXRP",
	4:  "asfDisableMaster",
	5:  "asfAccountTxnID",
	6:  "asfNoFreeze",
	7:  "asfGlobalFreeze",
	8:  "asfDefaultRipple",
	9:  "asfDepositAuth",
	10: "asfAuthorizedNFTokenMinter",
	12: "asfDisallowIncomingNFTokenOffer",
	13: "asfDisallowIncomingCheck",
	14: "asfDisallowIncomingPayChan",
	15: "asfDisallowIncomingTrustline",
	16: "asfAllowTrustLineClawback",
}

var (
	accountSetSetFlag       = entity.NewField("SetFlag", codec.UInt32)
	accountSetClearFlag     = entity.NewField("ClearFlag", codec.UInt32)
	accountSetDomain        = entity.NewField("Domain", codec.Blob)
	accountSetEmailHash     = entity.NewField("EmailHash", codec.Hash128)
	accountSetMessageKey    = entity.NewField("MessageKey", codec.Blob)
	accountSetTransferRate  = entity.NewField("TransferRate", codec.UInt32)
	accountSetTickSize      = entity.NewField("TickSize", codec.UInt8)
	accountSetNFTokenMinter = entity.NewField("NFTokenMinter", codec.Account)

	_ = register(NewSchema(TypeAccountSet, accountSetFlags,
		accountSetSetFlag,
		accountSetClearFlag,
		accountSetDomain,
		accountSetEmailHash,
		accountSetMessageKey,
		accountSetTransferRate,
		accountSetTickSize,
		accountSetNFTokenMinter,
	), func(b *entity.Binding) Transaction { return &AccountSet{Base{b}} })
)

// AccountSet modifies account settings
type AccountSet struct {
	Base
}

func (t *AccountSet) SetFlag() *uint32             { return accountSetSetFlag.Get(t.b) }
func (t *AccountSet) ClearFlag() *uint32           { return accountSetClearFlag.Get(t.b) }
func (t *AccountSet) EmailHash() string            { return accountSetEmailHash.Get(t.b) }
func (t *AccountSet) MessageKey() string           { return accountSetMessageKey.Get(t.b) }
func (t *AccountSet) TransferRate() *uint32        { return accountSetTransferRate.Get(t.b) }
func (t *AccountSet) TickSize() *uint8             { return accountSetTickSize.Get(t.b) }
func (t *AccountSet) NFTokenMinter() codec.Address { return accountSetNFTokenMinter.Get(t.b) }
func (t *AccountSet) HasDomain() bool              { return accountSetDomain.Has(t.b) }
func (t *AccountSet) Domain() string               { return codec.HexToText(accountSetDomain.Get(t.b)) }
func (t *AccountSet) SetFlagName() string          { return accountSetFlagName(t.SetFlag()) }
func (t *AccountSet) ClearFlagName() string        { return accountSetFlagName(t.ClearFlag()) }

func accountSetFlagName(v *uint32) string {
	if v == nil {
		return ""
	}
	if name, ok := accountSetFlagNames[*v]; ok {
		return name
	}
	return "asfUnknown"
}

var (
	accountDeleteDestination    = entity.NewRequiredField("Destination", codec.Account)
	accountDeleteDestinationTag = entity.NewField("DestinationTag", codec.UInt32)

	_ = register(NewSchema(TypeAccountDelete, nil,
		accountDeleteDestination,
		accountDeleteDestinationTag,
	), func(b *entity.Binding) Transaction { return &AccountDelete{Base{b}} })
)

// AccountDelete removes Account and sends its remaining balance to Destination
type AccountDelete struct {
	Base
}

func (t *AccountDelete) Destination() codec.Address { return accountDeleteDestination.Get(t.b) }
func (t *AccountDelete) DestinationTag() *uint32    { return accountDeleteDestinationTag.Get(t.b) }

var (
	setRegularKeyKey = entity.NewField("RegularKey", codec.Account)

	_ = register(NewSchema(TypeSetRegularKey, nil,
		setRegularKeyKey,
	), func(b *entity.Binding) Transaction { return &SetRegularKey{Base{b}} })
)

// SetRegularKey assigns or removes (when absent) the regular key pair
type SetRegularKey struct {
	Base
}

func (t *SetRegularKey) RegularKey() codec.Address { return setRegularKeyKey.Get(t.b) }

var (
	signerListSetQuorum  = entity.NewRequiredField("SignerQuorum", codec.UInt32)
	signerListSetEntries = entity.NewField("SignerEntries", codec.SignerEntries)

	_ = register(NewSchema(TypeSignerListSet, nil,
		signerListSetQuorum,
		signerListSetEntries,
	), func(b *entity.Binding) Transaction { return &SignerListSet{Base{b}} })
)

// SignerListSet creates, replaces or (quorum 0) removes the signer list
type SignerListSet struct {
	Base
}

func (t *SignerListSet) SignerQuorum() uint32               { return u32(signerListSetQuorum.Get(t.b)) }
func (t *SignerListSet) SignerEntries() []codec.SignerEntry { return signerListSetEntries.Get(t.b) }
func (t *SignerListSet) IsRemoval() bool                    { return t.SignerQuorum() == 0 }

var (
	depositPreauthAuthorize   = entity.NewField("Authorize", codec.Account)
	depositPreauthUnauthorize = entity.NewField("Unauthorize", codec.Account)

	_ = register(NewSchema(TypeDepositPreauth, nil,
		depositPreauthAuthorize,
		depositPreauthUnauthorize,
	), func(b *entity.Binding) Transaction { return &DepositPreauth{Base{b}} })
)

// DepositPreauth grants or revokes preauthorization of one sender
type DepositPreauth struct {
	Base
}

func (t *DepositPreauth) Authorize() codec.Address   { return depositPreauthAuthorize.Get(t.b) }
func (t *DepositPreauth) Unauthorize() codec.Address { return depositPreauthUnauthorize.Get(t.b) }

var (
	ticketCreateCount = entity.NewRequiredField("TicketCount", codec.UInt32)

	_ = register(NewSchema(TypeTicketCreate, nil,
		ticketCreateCount,
	), func(b *entity.Binding) Transaction { return &TicketCreate{Base{b}} })
)

// TicketCreate reserves TicketCount sequence numbers
type TicketCreate struct {
	Base
}

func (t *TicketCreate) TicketCount() uint32 { return u32(ticketCreateCount.Get(t.b)) }

// Tickets lists the tickets created per metadata
func (t *TicketCreate) Tickets() []uint32 {
	var seqs []uint32
	for _, node := range t.Meta().Find(entity.CreatedNode, "Ticket") {
		if seq, err := codec.UInt32.Decode(node.Fields()["TicketSequence"]); err == nil {
			seqs = append(seqs, *seq)
		}
	}
	return seqs
}
