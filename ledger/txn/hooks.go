package txn

import (
	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
)

// hook network transaction types
const (
	TypeSetHook     = "SetHook"
	TypeInvoke      = "Invoke"
	TypeImport      = "Import"
	TypeClaimReward = "ClaimReward"
	TypeRemit       = "Remit"
)

var (
	setHookHooks = entity.NewRequiredField("Hooks", codec.Hooks)

	_ = register(NewSchema(TypeSetHook, nil,
		setHookHooks,
	), func(b *entity.Binding) Transaction { return &SetHook{Base{b}} })
)

// SetHook installs, updates or removes hooks
type SetHook struct {
	Base
}

func (t *SetHook) Hooks() []codec.Hook { return setHookHooks.Get(t.b) }

var (
	invokeDestination = entity.NewField("Destination", codec.Account)
	invokeBlob        = entity.NewField("Blob", codec.Blob)

	_ = register(NewSchema(TypeInvoke, nil,
		invokeDestination,
		invokeBlob,
	), func(b *entity.Binding) Transaction { return &Invoke{Base{b}} })
)

// Invoke triggers hooks without moving value
type Invoke struct {
	Base
}

func (t *Invoke) Destination() codec.Address { return invokeDestination.Get(t.b) }
func (t *Invoke) Blob() string               { return invokeBlob.Get(t.b) }

var (
	importBlob   = entity.NewRequiredField("Blob", codec.Blob)
	importIssuer = entity.NewField("Issuer", codec.Account)

	_ = register(NewSchema(TypeImport, nil,
		importBlob,
		importIssuer,
	), func(b *entity.Binding) Transaction { return &Import{Base{b}} })
)

// Import burns on another network and mints the proven amount here
type Import struct {
	Base
}

func (t *Import) Blob() string          { return importBlob.Get(t.b) }
func (t *Import) Issuer() codec.Address { return importIssuer.Get(t.b) }

var claimRewardFlags = codec.FlagTable{
	{Name: "tfOptOut", Mask: 0x00000001},
}

var (
	claimRewardIssuer = entity.NewField("Issuer", codec.Account)

	_ = register(NewSchema(TypeClaimReward, claimRewardFlags,
		claimRewardIssuer,
	), func(b *entity.Binding) Transaction { return &ClaimReward{Base{b}} })
)

// ClaimReward opts in to (or out of) balance rewards
type ClaimReward struct {
	Base
}

func (t *ClaimReward) Issuer() codec.Address { return claimRewardIssuer.Get(t.b) }
func (t *ClaimReward) IsOptOut() bool        { return t.Flags().Has("tfOptOut") }

var (
	remitDestination    = entity.NewRequiredField("Destination", codec.Account)
	remitDestinationTag = entity.NewField("DestinationTag", codec.UInt32)
	remitAmounts        = entity.NewField("Amounts", codec.AmountEntries)
	remitURITokenIDs    = entity.NewField("URITokenIDs", codec.HashArray)
	remitMintURIToken   = entity.NewField("MintURIToken", codec.Object)
	remitInform         = entity.NewField("Inform", codec.Account)
	remitBlob           = entity.NewField("Blob", codec.Blob)

	_ = register(NewSchema(TypeRemit, nil,
		remitDestination,
		remitDestinationTag,
		remitAmounts,
		remitURITokenIDs,
		remitMintURIToken,
		remitInform,
		remitBlob,
	), func(b *entity.Binding) Transaction { return &Remit{Base{b}} })
)

// Remit sends several amounts and URITokens in one transaction
type Remit struct {
	Base
}

func (t *Remit) Destination() codec.Address { return remitDestination.Get(t.b) }
func (t *Remit) DestinationTag() *uint32    { return remitDestinationTag.Get(t.b) }
func (t *Remit) Amounts() []*codec.Amount   { return remitAmounts.Get(t.b) }
func (t *Remit) URITokenIDs() []string      { return remitURITokenIDs.Get(t.b) }
func (t *Remit) Inform() codec.Address      { return remitInform.Get(t.b) }
func (t *Remit) Blob() string               { return remitBlob.Get(t.b) }

// MintURI is the URI of a token minted for Destination, empty when none
func (t *Remit) MintURI() string {
	mint := remitMintURIToken.Get(t.b)
	if mint == nil {
		return ""
	}
	uri, _ := mint["URI"].(string)
	return codec.HexToText(uri)
}
