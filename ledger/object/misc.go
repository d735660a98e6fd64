package object

import (
	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
)

var (
	ticketAccount  = entity.NewRequiredField("Account", codec.Account)
	ticketSequence = entity.NewRequiredField("TicketSequence", codec.UInt32)

	ticketSchema = register(NewSchema(TypeTicket, nil,
		ticketAccount,
		ticketSequence,
	), func(b *entity.Binding) Object { return &Ticket{Base{b}} })
)

// Ticket reserves a sequence number
type Ticket struct {
	Base
}

func (o *Ticket) Account() codec.Address { return ticketAccount.Get(o.b) }
func (o *Ticket) TicketSequence() uint32 { return u32(ticketSequence.Get(o.b)) }

var (
	depositPreauthAccount   = entity.NewRequiredField("Account", codec.Account)
	depositPreauthAuthorize = entity.NewRequiredField("Authorize", codec.Account)

	depositPreauthSchema = register(NewSchema(TypeDepositPreauth, nil,
		depositPreauthAccount,
		depositPreauthAuthorize,
	), func(b *entity.Binding) Object { return &DepositPreauth{Base{b}} })
)

// DepositPreauth lets Authorize pay Account despite deposit authorization
type DepositPreauth struct {
	Base
}

func (o *DepositPreauth) Account() codec.Address   { return depositPreauthAccount.Get(o.b) }
func (o *DepositPreauth) Authorize() codec.Address { return depositPreauthAuthorize.Get(o.b) }

var signerListFlags = codec.FlagTable{
	{Name: "lsfOneOwnerCount", Mask: 0x00010000},
}

var (
	signerListQuorum  = entity.NewRequiredField("SignerQuorum", codec.UInt32)
	signerListEntries = entity.NewRequiredField("SignerEntries", codec.SignerEntries)
	signerListID      = entity.NewField("SignerListID", codec.UInt32)

	signerListSchema = register(NewSchema(TypeSignerList, signerListFlags,
		signerListQuorum,
		signerListEntries,
		signerListID,
	), func(b *entity.Binding) Object { return &SignerList{Base{b}} })
)

// SignerList is an account's multi-signing setup
type SignerList struct {
	Base
}

func (o *SignerList) SignerQuorum() uint32               { return u32(signerListQuorum.Get(o.b)) }
func (o *SignerList) SignerEntries() []codec.SignerEntry { return signerListEntries.Get(o.b) }

// TotalWeight sums the weights of all entries
func (o *SignerList) TotalWeight() uint32 {
	var total uint32
	for _, e := range o.SignerEntries() {
		total += uint32(e.SignerWeight)
	}
	return total
}

var (
	ammAccount        = entity.NewRequiredField("Account", codec.Account)
	ammAsset          = entity.NewRequiredField("Asset", codec.IssueCodec)
	ammAsset2         = entity.NewRequiredField("Asset2", codec.IssueCodec)
	ammLPTokenBalance = entity.NewField("LPTokenBalance", codec.AmountCodec)
	ammTradingFee     = entity.NewField("TradingFee", codec.UInt16)
	ammAuctionSlot    = entity.NewField("AuctionSlot", codec.Object)

	ammSchema = register(NewSchema(TypeAMM, nil,
		ammAccount,
		ammAsset,
		ammAsset2,
		ammLPTokenBalance,
		ammTradingFee,
		ammAuctionSlot,
	), func(b *entity.Binding) Object { return &AMM{Base{b}} })
)

// AMM is an automated market maker pool
type AMM struct {
	Base
}

func (o *AMM) Account() codec.Address        { return ammAccount.Get(o.b) }
func (o *AMM) Asset() *codec.Issue           { return ammAsset.Get(o.b) }
func (o *AMM) Asset2() *codec.Issue          { return ammAsset2.Get(o.b) }
func (o *AMM) LPTokenBalance() *codec.Amount { return ammLPTokenBalance.Get(o.b) }

// TradingFee in units of 1/100000
func (o *AMM) TradingFee() uint16 {
	if fee := ammTradingFee.Get(o.b); fee != nil {
		return *fee
	}
	return 0
}

var (
	didAccount  = entity.NewRequiredField("Account", codec.Account)
	didDocument = entity.NewField("DIDDocument", codec.Blob)
	didURI      = entity.NewField("URI", codec.Blob)
	didData     = entity.NewField("Data", codec.Blob)

	didSchema = register(NewSchema(TypeDID, nil,
		didAccount,
		didDocument,
		didURI,
		didData,
	), func(b *entity.Binding) Object { return &DID{Base{b}} })
)

// DID is a decentralized identifier attached to an account
type DID struct {
	Base
}

func (o *DID) Account() codec.Address { return didAccount.Get(o.b) }
func (o *DID) URI() string            { return codec.HexToText(didURI.Get(o.b)) }
func (o *DID) Document() string       { return codec.HexToText(didDocument.Get(o.b)) }
func (o *DID) Data() string           { return codec.HexToText(didData.Get(o.b)) }
