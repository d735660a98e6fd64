package explain

import (
	"strconv"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/object"
	mapset "github.com/deckarep/golang-set"
)

func init() {
	registerObject(object.TypeAccountRoot, newAccountRootView)
	registerObject(object.TypeRippleState, newRippleStateView)
	registerObject(object.TypeOffer, newOfferView)
	registerObject(object.TypeEscrow, newEscrowView)
	registerObject(object.TypeCheck, newCheckView)
	registerObject(object.TypePayChannel, newPayChannelView)
	registerObject(object.TypeTicket, newTicketView)
	registerObject(object.TypeDepositPreauth, newDepositPreauthView)
	registerObject(object.TypeSignerList, newSignerListView)
	registerObject(object.TypeNFTokenOffer, newNFTokenOfferView)
	registerObject(object.TypeURIToken, newURITokenView)
	registerObject(object.TypeAMM, newAMMView)
	registerObject(object.TypeDID, newDIDView)
}

// objBase implements the parts shared by ledger entry explainers.
// Standing entries have no metadata, so Mutate is always empty.
type objBase struct {
	obj  object.Object
	opts Options
}

func newObjBase(o object.Object, opts Options) objBase {
	return objBase{obj: o, opts: opts}
}

func (e *objBase) t(key string, params Params) string {
	return e.opts.localize(key, params)
}

// Label impl Explainer
func (e *objBase) Label() string {
	return e.t("label."+e.obj.LedgerEntryType(), nil)
}

// Participants impl Explainer
func (e *objBase) Participants() Participants { return Participants{} }

// MonetaryDetails impl Explainer
func (e *objBase) MonetaryDetails() *MonetaryDetails { return &MonetaryDetails{} }

// owns is true when the viewing account is owner, or no viewer is set
func (e *objBase) owns(owner codec.Address) bool {
	return e.opts.Account == "" || e.opts.Account == owner
}

func expiry(t codec.Timestamp) string {
	if t == "" {
		return "-"
	}
	return formatTime(t)
}

type accountRootView struct {
	objBase
	o *object.AccountRoot
}

func newAccountRootView(o *object.AccountRoot, opts Options) Explainer {
	return &accountRootView{newObjBase(o, opts), o}
}

func (e *accountRootView) Description() string {
	return e.t("obj.AccountRoot", Params{
		"account": string(e.o.Account()),
		"balance": formatAmount(e.o.Balance()),
		"owned":   strconv.FormatUint(uint64(e.o.OwnerCount()), 10),
	})
}

func (e *accountRootView) Participants() Participants {
	return Participants{Start: party(e.o.Account(), nil)}
}

type rippleStateView struct {
	objBase
	o *object.RippleState
}

func newRippleStateView(o *object.RippleState, opts Options) Explainer {
	return &rippleStateView{newObjBase(o, opts), o}
}

// holder is the side the line is described from
func (e *rippleStateView) holder() codec.Address {
	if e.opts.Account == e.o.High() {
		return e.o.High()
	}
	return e.o.Low()
}

func (e *rippleStateView) Description() string {
	holder := e.holder()
	return e.t("obj.RippleState", Params{
		"account": string(holder),
		"balance": formatAmount(e.o.BalanceFor(holder)),
		"limit":   formatAmount(e.o.LimitFor(holder)),
	})
}

func (e *rippleStateView) Participants() Participants {
	return Participants{Start: party(e.o.Low(), nil), End: party(e.o.High(), nil)}
}

func (e *rippleStateView) MonetaryDetails() *MonetaryDetails {
	d := &MonetaryDetails{}
	d.add(e.o.BalanceFor(e.holder()), NoEffect, "")
	return d
}

type offerView struct {
	objBase
	o *object.Offer
}

func newOfferView(o *object.Offer, opts Options) Explainer {
	return &offerView{newObjBase(o, opts), o}
}

func (e *offerView) Description() string {
	return e.t("obj.Offer", Params{
		"account":    string(e.o.Account()),
		"takerGets":  formatAmount(e.o.TakerGets()),
		"takerPays":  formatAmount(e.o.TakerPays()),
		"expiration": expiry(e.o.Expiration()),
	})
}

func (e *offerView) Participants() Participants {
	return Participants{Start: party(e.o.Account(), nil)}
}

func (e *offerView) MonetaryDetails() *MonetaryDetails {
	d := &MonetaryDetails{}
	if e.o.IsExpired(e.opts.now()) {
		d.add(e.o.TakerGets(), NoEffect, "")
		d.add(e.o.TakerPays(), NoEffect, "")
		return d
	}
	if e.owns(e.o.Account()) {
		d.add(e.o.TakerGets(), PotentialEffect, Dec)
		d.add(e.o.TakerPays(), PotentialEffect, Inc)
	} else {
		d.add(e.o.TakerPays(), PotentialEffect, Dec)
		d.add(e.o.TakerGets(), PotentialEffect, Inc)
	}
	return d
}

type escrowView struct {
	objBase
	o *object.Escrow
}

func newEscrowView(o *object.Escrow, opts Options) Explainer {
	return &escrowView{newObjBase(o, opts), o}
}

func (e *escrowView) Description() string {
	return e.t("obj.Escrow", Params{
		"account":     string(e.o.Account()),
		"destination": string(e.o.Destination()),
		"amount":      formatAmount(e.o.Amount()),
		"finishAfter": expiry(e.o.FinishAfter()),
		"cancelAfter": expiry(e.o.CancelAfter()),
	})
}

func (e *escrowView) Participants() Participants {
	return Participants{
		Start: party(e.o.Account(), e.o.SourceTag()),
		End:   party(e.o.Destination(), e.o.DestinationTag()),
	}
}

// MonetaryDetails: the destination may receive until expiry, the owner may reclaim after
func (e *escrowView) MonetaryDetails() *MonetaryDetails {
	d := &MonetaryDetails{}
	now := e.opts.now()
	viewer := e.opts.Account
	switch {
	case viewer == e.o.Destination() && e.o.CanFinish(now):
		d.add(e.o.Amount(), PotentialEffect, Inc)
	case viewer != e.o.Destination() && e.owns(e.o.Account()) && e.o.CanCancel(now):
		d.add(e.o.Amount(), PotentialEffect, Inc)
	default:
		d.add(e.o.Amount(), NoEffect, "")
	}
	return d
}

type checkView struct {
	objBase
	o *object.Check
}

func newCheckView(o *object.Check, opts Options) Explainer {
	return &checkView{newObjBase(o, opts), o}
}

func (e *checkView) Description() string {
	return e.t("obj.Check", Params{
		"account":     string(e.o.Account()),
		"destination": string(e.o.Destination()),
		"amount":      formatAmount(e.o.SendMax()),
		"expiration":  expiry(e.o.Expiration()),
	})
}

func (e *checkView) Participants() Participants {
	return Participants{Start: party(e.o.Account(), nil), End: party(e.o.Destination(), e.o.DestinationTag())}
}

func (e *checkView) MonetaryDetails() *MonetaryDetails {
	d := &MonetaryDetails{}
	switch {
	case e.o.IsExpired(e.opts.now()):
		d.add(e.o.SendMax(), NoEffect, "")
	case e.opts.Account != "" && e.opts.Account == e.o.Destination():
		d.add(e.o.SendMax(), PotentialEffect, Inc)
	default:
		d.add(e.o.SendMax(), PotentialEffect, Dec)
	}
	return d
}

type payChannelView struct {
	objBase
	o *object.PayChannel
}

func newPayChannelView(o *object.PayChannel, opts Options) Explainer {
	return &payChannelView{newObjBase(o, opts), o}
}

func (e *payChannelView) Description() string {
	return e.t("obj.PayChannel", Params{
		"account":     string(e.o.Account()),
		"destination": string(e.o.Destination()),
		"remaining":   formatAmount(e.o.Remaining()),
		"delay":       strconv.FormatUint(uint64(e.o.SettleDelay()), 10),
	})
}

func (e *payChannelView) Participants() Participants {
	return Participants{Start: party(e.o.Account(), nil), End: party(e.o.Destination(), e.o.DestinationTag())}
}

func (e *payChannelView) MonetaryDetails() *MonetaryDetails {
	d := &MonetaryDetails{}
	switch {
	case e.o.IsExpired(e.opts.now()):
		d.add(e.o.Remaining(), NoEffect, "")
	case e.opts.Account != "" && e.opts.Account == e.o.Destination():
		d.add(e.o.Remaining(), PotentialEffect, Inc)
	default:
		d.add(e.o.Remaining(), PotentialEffect, Dec)
	}
	return d
}

type ticketView struct {
	objBase
	o *object.Ticket
}

func newTicketView(o *object.Ticket, opts Options) Explainer {
	return &ticketView{newObjBase(o, opts), o}
}

func (e *ticketView) Description() string {
	return e.t("obj.Ticket", Params{"account": string(e.o.Account()), "sequence": strconv.FormatUint(uint64(e.o.TicketSequence()), 10)})
}

func (e *ticketView) Participants() Participants {
	return Participants{Start: party(e.o.Account(), nil)}
}

type depositPreauthView struct {
	objBase
	o *object.DepositPreauth
}

func newDepositPreauthView(o *object.DepositPreauth, opts Options) Explainer {
	return &depositPreauthView{newObjBase(o, opts), o}
}

func (e *depositPreauthView) Description() string {
	return e.t("obj.DepositPreauth", Params{"account": string(e.o.Account()), "authorized": string(e.o.Authorize())})
}

func (e *depositPreauthView) Participants() Participants {
	return Participants{Start: party(e.o.Authorize(), nil), End: party(e.o.Account(), nil)}
}

type signerListView struct {
	objBase
	o *object.SignerList
}

func newSignerListView(o *object.SignerList, opts Options) Explainer {
	return &signerListView{newObjBase(o, opts), o}
}

func (e *signerListView) Description() string {
	signers := mapset.NewSet()
	for _, entry := range e.o.SignerEntries() {
		signers.Add(entry.Account)
	}
	return e.t("obj.SignerList", Params{
		"quorum":  strconv.FormatUint(uint64(e.o.SignerQuorum()), 10),
		"weight":  strconv.FormatUint(uint64(e.o.TotalWeight()), 10),
		"signers": strconv.Itoa(signers.Cardinality()),
	})
}

type nftokenOfferView struct {
	objBase
	o *object.NFTokenOffer
}

func newNFTokenOfferView(o *object.NFTokenOffer, opts Options) Explainer {
	return &nftokenOfferView{newObjBase(o, opts), o}
}

func (e *nftokenOfferView) Description() string {
	params := Params{
		"owner":      string(e.o.Owner()),
		"token":      e.o.NFTokenID(),
		"amount":     formatAmount(e.o.Amount()),
		"expiration": expiry(e.o.Expiration()),
	}
	if e.o.IsSellOffer() {
		return e.t("obj.NFTokenOffer.sell", params)
	}
	return e.t("obj.NFTokenOffer.buy", params)
}

func (e *nftokenOfferView) Participants() Participants {
	return Participants{Start: party(e.o.Owner(), nil), End: party(e.o.Destination(), nil)}
}

func (e *nftokenOfferView) MonetaryDetails() *MonetaryDetails {
	d := &MonetaryDetails{}
	if e.o.IsExpired(e.opts.now()) {
		d.add(e.o.Amount(), NoEffect, "")
		return d
	}
	// a sell offer pays its owner, a buy offer is paid by it
	sell := e.o.IsSellOffer()
	if sell == e.owns(e.o.Owner()) {
		d.add(e.o.Amount(), PotentialEffect, Inc)
	} else {
		d.add(e.o.Amount(), PotentialEffect, Dec)
	}
	return d
}

func (e *nftokenOfferView) AssetDetails() []AssetDetail {
	var owner codec.Address
	if e.o.IsSellOffer() {
		owner = e.o.Owner()
	}
	return nftokenAsset(e.o.NFTokenID(), owner)
}

type uriTokenView struct {
	objBase
	o *object.URIToken
}

func newURITokenView(o *object.URIToken, opts Options) Explainer {
	return &uriTokenView{newObjBase(o, opts), o}
}

func (e *uriTokenView) Description() string {
	desc := e.t("obj.URIToken", Params{"owner": string(e.o.Owner()), "issuer": string(e.o.Issuer()), "uri": e.o.URI()})
	if e.o.IsForSale() {
		desc += " " + e.t("uritoken.forSale", Params{"amount": formatAmount(e.o.Amount())})
	}
	return desc
}

func (e *uriTokenView) Participants() Participants {
	return Participants{Start: party(e.o.Issuer(), nil), End: party(e.o.Owner(), nil)}
}

func (e *uriTokenView) MonetaryDetails() *MonetaryDetails {
	d := &MonetaryDetails{}
	if e.o.IsForSale() {
		action := Dec
		if e.owns(e.o.Owner()) {
			action = Inc
		}
		d.add(e.o.Amount(), PotentialEffect, action)
	}
	return d
}

func (e *uriTokenView) AssetDetails() []AssetDetail {
	return uriTokenAsset(e.o.Index(), e.o.Owner())
}

type ammView struct {
	objBase
	o *object.AMM
}

func newAMMView(o *object.AMM, opts Options) Explainer {
	return &ammView{newObjBase(o, opts), o}
}

func (e *ammView) Description() string {
	return e.t("obj.AMM", Params{
		"account": string(e.o.Account()),
		"asset":   e.o.Asset().String(),
		"asset2":  e.o.Asset2().String(),
		"fee":     strconv.FormatUint(uint64(e.o.TradingFee()), 10),
	})
}

func (e *ammView) Participants() Participants {
	return Participants{Through: party(e.o.Account(), nil)}
}

type didView struct {
	objBase
	o *object.DID
}

func newDIDView(o *object.DID, opts Options) Explainer {
	return &didView{newObjBase(o, opts), o}
}

func (e *didView) Description() string {
	return e.t("obj.DID", Params{"account": string(e.o.Account()), "uri": e.o.URI()})
}

func (e *didView) Participants() Participants {
	return Participants{Start: party(e.o.Account(), nil)}
}
