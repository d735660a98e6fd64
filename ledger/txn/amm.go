package txn

import (
	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
	"github.com/anyswap/xrpl-txmodel/ledger/object"
)

// AMM, clawback and DID transaction types
const (
	TypeAMMCreate   = "AMMCreate"
	TypeAMMDeposit  = "AMMDeposit"
	TypeAMMWithdraw = "AMMWithdraw"
	TypeAMMVote     = "AMMVote"
	TypeAMMBid      = "AMMBid"
	TypeAMMDelete   = "AMMDelete"
	TypeClawback    = "Clawback"
	TypeDIDSet      = "DIDSet"
	TypeDIDDelete   = "DIDDelete"
)

var (
	ammAsset  = entity.NewRequiredField("Asset", codec.IssueCodec)
	ammAsset2 = entity.NewRequiredField("Asset2", codec.IssueCodec)
)

// ammPool carries the asset pair shared by AMM transactions operating on an existing pool
type ammPool struct {
	Base
}

func (t *ammPool) Asset() *codec.Issue  { return ammAsset.Get(t.b) }
func (t *ammPool) Asset2() *codec.Issue { return ammAsset2.Get(t.b) }

// AMMAccount is the pool's pseudo account per metadata
func (t *ammPool) AMMAccount() codec.Address {
	return ammAccount(t.Meta())
}

func ammAccount(meta *entity.Meta) codec.Address {
	for _, node := range meta.Find("", object.TypeAMM) {
		if account := node.Fields().String("Account"); account != "" {
			return codec.Address(account)
		}
	}
	return ""
}

var (
	ammCreateAmount     = entity.NewRequiredField("Amount", codec.AmountCodec)
	ammCreateAmount2    = entity.NewRequiredField("Amount2", codec.AmountCodec)
	ammCreateTradingFee = entity.NewRequiredField("TradingFee", codec.UInt16)

	_ = register(NewSchema(TypeAMMCreate, nil,
		ammCreateAmount,
		ammCreateAmount2,
		ammCreateTradingFee,
	), func(b *entity.Binding) Transaction { return &AMMCreate{Base{b}} })
)

// AMMCreate creates a pool funded with Amount and Amount2
type AMMCreate struct {
	Base
}

func (t *AMMCreate) Amount() *codec.Amount     { return ammCreateAmount.Get(t.b) }
func (t *AMMCreate) Amount2() *codec.Amount    { return ammCreateAmount2.Get(t.b) }
func (t *AMMCreate) AMMAccount() codec.Address { return ammAccount(t.Meta()) }

// TradingFee in units of 1/100000
func (t *AMMCreate) TradingFee() uint16 {
	if fee := ammCreateTradingFee.Get(t.b); fee != nil {
		return *fee
	}
	return 0
}

var ammDepositFlags = codec.FlagTable{
	{Name: "tfLPToken", Mask: 0x00010000},
	{Name: "tfSingleAsset", Mask: 0x00080000},
	{Name: "tfTwoAsset", Mask: 0x00100000},
	{Name: "tfOneAssetLPToken", Mask: 0x00200000},
	{Name: "tfLimitLPToken", Mask: 0x00400000},
	{Name: "tfTwoAssetIfEmpty", Mask: 0x00800000},
}

var (
	ammDepositAmount     = entity.NewField("Amount", codec.AmountCodec)
	ammDepositAmount2    = entity.NewField("Amount2", codec.AmountCodec)
	ammDepositEPrice     = entity.NewField("EPrice", codec.AmountCodec)
	ammDepositLPTokenOut = entity.NewField("LPTokenOut", codec.AmountCodec)

	_ = register(NewSchema(TypeAMMDeposit, ammDepositFlags,
		ammAsset,
		ammAsset2,
		ammDepositAmount,
		ammDepositAmount2,
		ammDepositEPrice,
		ammDepositLPTokenOut,
	), func(b *entity.Binding) Transaction { return &AMMDeposit{ammPool{Base{b}}} })
)

// AMMDeposit adds liquidity in exchange for LP tokens
type AMMDeposit struct {
	ammPool
}

func (t *AMMDeposit) Amount() *codec.Amount     { return ammDepositAmount.Get(t.b) }
func (t *AMMDeposit) Amount2() *codec.Amount    { return ammDepositAmount2.Get(t.b) }
func (t *AMMDeposit) EPrice() *codec.Amount     { return ammDepositEPrice.Get(t.b) }
func (t *AMMDeposit) LPTokenOut() *codec.Amount { return ammDepositLPTokenOut.Get(t.b) }

var ammWithdrawFlags = codec.FlagTable{
	{Name: "tfLPToken", Mask: 0x00010000},
	{Name: "tfWithdrawAll", Mask: 0x00020000},
	{Name: "tfOneAssetWithdrawAll", Mask: 0x00040000},
	{Name: "tfSingleAsset", Mask: 0x00080000},
	{Name: "tfTwoAsset", Mask: 0x00100000},
	{Name: "tfOneAssetLPToken", Mask: 0x00200000},
	{Name: "tfLimitLPToken", Mask: 0x00400000},
}

var (
	ammWithdrawAmount    = entity.NewField("Amount", codec.AmountCodec)
	ammWithdrawAmount2   = entity.NewField("Amount2", codec.AmountCodec)
	ammWithdrawEPrice    = entity.NewField("EPrice", codec.AmountCodec)
	ammWithdrawLPTokenIn = entity.NewField("LPTokenIn", codec.AmountCodec)

	_ = register(NewSchema(TypeAMMWithdraw, ammWithdrawFlags,
		ammAsset,
		ammAsset2,
		ammWithdrawAmount,
		ammWithdrawAmount2,
		ammWithdrawEPrice,
		ammWithdrawLPTokenIn,
	), func(b *entity.Binding) Transaction { return &AMMWithdraw{ammPool{Base{b}}} })
)

// AMMWithdraw redeems LP tokens for pool assets
type AMMWithdraw struct {
	ammPool
}

func (t *AMMWithdraw) Amount() *codec.Amount    { return ammWithdrawAmount.Get(t.b) }
func (t *AMMWithdraw) Amount2() *codec.Amount   { return ammWithdrawAmount2.Get(t.b) }
func (t *AMMWithdraw) EPrice() *codec.Amount    { return ammWithdrawEPrice.Get(t.b) }
func (t *AMMWithdraw) LPTokenIn() *codec.Amount { return ammWithdrawLPTokenIn.Get(t.b) }

var (
	ammVoteTradingFee = entity.NewRequiredField("TradingFee", codec.UInt16)

	_ = register(NewSchema(TypeAMMVote, nil,
		ammAsset,
		ammAsset2,
		ammVoteTradingFee,
	), func(b *entity.Binding) Transaction { return &AMMVote{ammPool{Base{b}}} })
)

// AMMVote votes on the pool trading fee
type AMMVote struct {
	ammPool
}

// TradingFee in units of 1/100000
func (t *AMMVote) TradingFee() uint16 {
	if fee := ammVoteTradingFee.Get(t.b); fee != nil {
		return *fee
	}
	return 0
}

var (
	ammBidMin          = entity.NewField("BidMin", codec.AmountCodec)
	ammBidMax          = entity.NewField("BidMax", codec.AmountCodec)
	ammBidAuthAccounts = entity.NewField("AuthAccounts", codec.AuthAccounts)

	_ = register(NewSchema(TypeAMMBid, nil,
		ammAsset,
		ammAsset2,
		ammBidMin,
		ammBidMax,
		ammBidAuthAccounts,
	), func(b *entity.Binding) Transaction { return &AMMBid{ammPool{Base{b}}} })
)

// AMMBid bids LP tokens for the auction slot
type AMMBid struct {
	ammPool
}

func (t *AMMBid) BidMin() *codec.Amount         { return ammBidMin.Get(t.b) }
func (t *AMMBid) BidMax() *codec.Amount         { return ammBidMax.Get(t.b) }
func (t *AMMBid) AuthAccounts() []codec.Address { return ammBidAuthAccounts.Get(t.b) }

var (
	_ = register(NewSchema(TypeAMMDelete, nil,
		ammAsset,
		ammAsset2,
	), func(b *entity.Binding) Transaction { return &AMMDelete{ammPool{Base{b}}} })
)

// AMMDelete removes an empty pool
type AMMDelete struct {
	ammPool
}

var (
	clawbackAmount = entity.NewRequiredField("Amount", codec.AmountCodec)

	_ = register(NewSchema(TypeClawback, nil,
		clawbackAmount,
	), func(b *entity.Binding) Transaction { return &Clawback{Base{b}} })
)

// Clawback lets an issuer take back issued tokens.
// The Amount issuer names the holder, not the issuer.
type Clawback struct {
	Base
}

// Amount clawed back, issued by Account
func (t *Clawback) Amount() *codec.Amount {
	amount := clawbackAmount.Get(t.b)
	if amount == nil {
		return nil
	}
	c := *amount
	c.Issuer = string(t.Account())
	return &c
}

// Holder is the account the tokens are taken from
func (t *Clawback) Holder() codec.Address {
	if amount := clawbackAmount.Get(t.b); amount != nil {
		return codec.Address(amount.Issuer)
	}
	return ""
}

var (
	didSetDocument = entity.NewField("DIDDocument", codec.Blob)
	didSetURI      = entity.NewField("URI", codec.Blob)
	didSetData     = entity.NewField("Data", codec.Blob)

	_ = register(NewSchema(TypeDIDSet, nil,
		didSetDocument,
		didSetURI,
		didSetData,
	), func(b *entity.Binding) Transaction { return &DIDSet{Base{b}} })

	_ = register(NewSchema(TypeDIDDelete, nil), func(b *entity.Binding) Transaction { return &DIDDelete{Base{b}} })
)

// DIDSet creates or updates the account's DID
type DIDSet struct {
	Base
}

func (t *DIDSet) DIDDocument() string { return codec.HexToText(didSetDocument.Get(t.b)) }
func (t *DIDSet) URI() string         { return codec.HexToText(didSetURI.Get(t.b)) }
func (t *DIDSet) Data() string        { return codec.HexToText(didSetData.Get(t.b)) }

// DIDDelete removes the account's DID
type DIDDelete struct {
	Base
}
