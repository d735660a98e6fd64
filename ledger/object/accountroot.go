package object

import (
	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
)

// AccountRoot flags
var accountRootFlags = codec.FlagTable{
	{Name: "lsfPasswordSpent", Mask: 0x00010000},
	{Name: "lsfRequireDestTag", Mask: 0x00020000},
	{Name: "lsfRequireAuth", Mask: 0x00040000},
	{Name: "lsfDisallowXRP", Mask: 0x00080000},
	{Name: "lsfDisableMaster", Mask: 0x00100000},
	{Name: "lsfNoFreeze", Mask: 0x00200000},
	{Name: "lsfGlobalFreeze", Mask: 0x00400000},
	{Name: "lsfDefaultRipple", Mask: 0x00800000},
	{Name: "lsfDepositAuth", Mask: 0x01000000},
	{Name: "lsfDisallowIncomingNFTokenOffer", Mask: 0x04000000},
	{Name: "lsfDisallowIncomingCheck", Mask: 0x08000000},
	{Name: "lsfDisallowIncomingPayChan", Mask: 0x10000000},
	{Name: "lsfDisallowIncomingTrustline", Mask: 0x20000000},
	{Name: "lsfAllowTrustLineClawback", Mask: 0x80000000},
}

var (
	accountRootAccount        = entity.NewRequiredField("Account", codec.Account)
	accountRootBalance        = entity.NewRequiredField("Balance", codec.AmountCodec)
	accountRootSequence       = entity.NewRequiredField("Sequence", codec.UInt32)
	accountRootOwnerCount     = entity.NewField("OwnerCount", codec.UInt32)
	accountRootDomain         = entity.NewField("Domain", codec.Blob)
	accountRootEmailHash      = entity.NewField("EmailHash", codec.Hash128)
	accountRootRegularKey     = entity.NewField("RegularKey", codec.Account)
	accountRootTransferRate   = entity.NewField("TransferRate", codec.UInt32)
	accountRootTickSize       = entity.NewField("TickSize", codec.UInt8)
	accountRootTicketCount    = entity.NewField("TicketCount", codec.UInt32)
	accountRootNFTokenMinter  = entity.NewField("NFTokenMinter", codec.Account)
	accountRootFirstNFTSeq    = entity.NewField("FirstNFTokenSequence", codec.UInt32)
	accountRootMintedNFTokens = entity.NewField("MintedNFTokens", codec.UInt32)
	accountRootBurnedNFTokens = entity.NewField("BurnedNFTokens", codec.UInt32)
	accountRootAMMID          = entity.NewField("AMMID", codec.Hash256)

	accountRootSchema = register(NewSchema(TypeAccountRoot, accountRootFlags,
		accountRootAccount,
		accountRootBalance,
		accountRootSequence,
		accountRootOwnerCount,
		accountRootDomain,
		accountRootEmailHash,
		accountRootRegularKey,
		accountRootTransferRate,
		accountRootTickSize,
		accountRootTicketCount,
		accountRootNFTokenMinter,
		accountRootFirstNFTSeq,
		accountRootMintedNFTokens,
		accountRootBurnedNFTokens,
		accountRootAMMID,
	), func(b *entity.Binding) Object { return &AccountRoot{Base{b}} })
)

// AccountRoot is an account's root entry
type AccountRoot struct {
	Base
}

func (o *AccountRoot) Account() codec.Address    { return accountRootAccount.Get(o.b) }
func (o *AccountRoot) Balance() *codec.Amount    { return accountRootBalance.Get(o.b) }
func (o *AccountRoot) Sequence() uint32          { return u32(accountRootSequence.Get(o.b)) }
func (o *AccountRoot) OwnerCount() uint32        { return u32(accountRootOwnerCount.Get(o.b)) }
func (o *AccountRoot) RegularKey() codec.Address { return accountRootRegularKey.Get(o.b) }
func (o *AccountRoot) TicketCount() uint32       { return u32(accountRootTicketCount.Get(o.b)) }
func (o *AccountRoot) NFTokenMinter() codec.Address {
	return accountRootNFTokenMinter.Get(o.b)
}
func (o *AccountRoot) AMMID() string { return accountRootAMMID.Get(o.b) }

// Domain decoded from hex
func (o *AccountRoot) Domain() string {
	return codec.HexToText(accountRootDomain.Get(o.b))
}

// TransferRate in billionths, 0 when unset
func (o *AccountRoot) TransferRate() uint32 { return u32(accountRootTransferRate.Get(o.b)) }

// FirstNFTokenSequence defaults to the account sequence at its first mint when absent
func (o *AccountRoot) FirstNFTokenSequence() uint32 { return u32(accountRootFirstNFTSeq.Get(o.b)) }

// MintedNFTokens counts tokens minted by the account
func (o *AccountRoot) MintedNFTokens() uint32 { return u32(accountRootMintedNFTokens.Get(o.b)) }

// BurnedNFTokens counts tokens of the account that were burned
func (o *AccountRoot) BurnedNFTokens() uint32 { return u32(accountRootBurnedNFTokens.Get(o.b)) }

// RequireDestTag is true when incoming payments need a destination tag
func (o *AccountRoot) RequireDestTag() bool { return o.Flags().Has("lsfRequireDestTag") }

// DepositAuth is true when only preauthorized senders may pay the account
func (o *AccountRoot) DepositAuth() bool { return o.Flags().Has("lsfDepositAuth") }

// IsAMM is true for the pseudo account of an AMM pool
func (o *AccountRoot) IsAMM() bool { return o.AMMID() != "" }
