package explain

var englishMessages = map[string]string{
	"tx.generic": "{account} submitted a {type} transaction",

	"label.Payment":                 "Payment",
	"label.TrustSet":                "Trust line",
	"label.AccountSet":              "Account settings",
	"label.AccountDelete":           "Delete account",
	"label.SetRegularKey":           "Set regular key",
	"label.SignerListSet":           "Set signer list",
	"label.DepositPreauth":          "Deposit preauthorization",
	"label.TicketCreate":            "Create tickets",
	"label.OfferCreate":             "Create offer",
	"label.OfferCancel":             "Cancel offer",
	"label.EscrowCreate":            "Create escrow",
	"label.EscrowFinish":            "Finish escrow",
	"label.EscrowCancel":            "Cancel escrow",
	"label.CheckCreate":             "Create check",
	"label.CheckCash":               "Cash check",
	"label.CheckCancel":             "Cancel check",
	"label.PaymentChannelCreate":    "Open payment channel",
	"label.PaymentChannelFund":      "Fund payment channel",
	"label.PaymentChannelClaim":     "Claim from payment channel",
	"label.NFTokenMint":             "Mint NFT",
	"label.NFTokenBurn":             "Burn NFT",
	"label.NFTokenCreateOffer":      "Create NFT offer",
	"label.NFTokenCancelOffer":      "Cancel NFT offers",
	"label.NFTokenAcceptOffer":      "Accept NFT offer",
	"label.AMMCreate":               "Create AMM pool",
	"label.AMMDeposit":              "AMM deposit",
	"label.AMMWithdraw":             "AMM withdrawal",
	"label.AMMVote":                 "AMM fee vote",
	"label.AMMBid":                  "AMM auction bid",
	"label.AMMDelete":               "Delete AMM pool",
	"label.Clawback":                "Clawback",
	"label.DIDSet":                  "Set DID",
	"label.DIDDelete":               "Delete DID",
	"label.URITokenMint":            "Mint URI token",
	"label.URITokenBurn":            "Burn URI token",
	"label.URITokenBuy":             "Buy URI token",
	"label.URITokenCreateSellOffer": "Sell URI token",
	"label.URITokenCancelSellOffer": "Cancel URI token sale",
	"label.SetHook":                 "Set hooks",
	"label.Invoke":                  "Invoke hooks",
	"label.Import":                  "Import",
	"label.ClaimReward":             "Claim reward",
	"label.Remit":                   "Remit",
	"label.EnableAmendment":         "Amendment",
	"label.SetFee":                  "Fee change",
	"label.UNLModify":               "Negative UNL change",

	"label.AccountRoot":  "Account",
	"label.RippleState":  "Trust line",
	"label.Offer":        "Offer",
	"label.Escrow":       "Escrow",
	"label.Check":        "Check",
	"label.PayChannel":   "Payment channel",
	"label.Ticket":       "Ticket",
	"label.SignerList":   "Signer list",
	"label.NFTokenOffer": "NFT offer",
	"label.URIToken":     "URI token",
	"label.AMM":          "AMM pool",
	"label.DID":          "DID",

	"tx.Payment":                    "{account} paid {amount} to {destination}",
	"tx.Payment.partial":            "{account} partially paid {amount} to {destination}",
	"tx.TrustSet":                   "{account} trusts {issuer} up to {limit}",
	"tx.TrustSet.remove":            "{account} removed the {currency} trust line to {issuer}",
	"tx.AccountSet":                 "{account} updated its account settings",
	"tx.AccountSet.setFlag":         "{account} enabled {flag}",
	"tx.AccountSet.clearFlag":       "{account} disabled {flag}",
	"tx.AccountSet.domain":          "{account} set its domain to {domain}",
	"tx.AccountSet.clearDomain":     "{account} cleared its domain",
	"tx.AccountDelete":              "{account} deleted its account, sending the remaining balance to {destination}",
	"tx.SetRegularKey":              "{account} set its regular key to {key}",
	"tx.SetRegularKey.remove":       "{account} removed its regular key",
	"tx.SignerListSet":              "{account} set a signer list of {count} signers with quorum {quorum}",
	"tx.SignerListSet.remove":       "{account} removed its signer list",
	"tx.DepositPreauth.authorize":   "{account} preauthorized deposits from {authorized}",
	"tx.DepositPreauth.unauthorize": "{account} revoked the deposit preauthorization of {authorized}",
	"tx.TicketCreate":               "{account} created {count} tickets",

	"tx.OfferCreate":         "{account} offered {gets} for {pays}",
	"tx.OfferCreate.replace": "{account} replaced offer {sequence} with {gets} for {pays}",
	"tx.OfferCancel":         "{account} cancelled offer {sequence}",

	"tx.EscrowCreate":          "{account} escrowed {amount} for {destination}",
	"escrow.finishAfter":       "Finishable after {time}.",
	"escrow.cancelAfter":       "Cancellable after {time}.",
	"tx.EscrowFinish":          "{account} finished escrow {sequence} of {owner}",
	"tx.EscrowFinish.resolved": "{account} finished escrow {sequence} of {owner}, releasing {amount} to {destination}",
	"tx.EscrowCancel":          "{account} cancelled escrow {sequence} of {owner}",
	"tx.EscrowCancel.resolved": "{account} cancelled escrow {sequence} of {owner}, returning {amount}",

	"tx.CheckCreate": "{account} wrote a check of up to {amount} to {destination}",
	"tx.CheckCash":   "{account} cashed check {check} for {amount}",
	"tx.CheckCancel": "{account} cancelled check {check}",

	"tx.PaymentChannelCreate":      "{account} opened a channel of {amount} to {destination} with a settle delay of {delay}s",
	"tx.PaymentChannelFund":        "{account} added {amount} to channel {channel}",
	"tx.PaymentChannelClaim":       "{account} claimed up to {amount} from channel {channel}",
	"tx.PaymentChannelClaim.close": "{account} requested to close channel {channel}",
	"tx.PaymentChannelClaim.renew": "{account} renewed channel {channel}",

	"tx.NFTokenMint":                 "{account} minted an NFT with taxon {taxon}",
	"nftoken.onBehalf":               "Issued on behalf of {issuer}.",
	"nftoken.transferFee":            "Transfer fee {fee}.",
	"nftoken.uri":                    "URI {uri}.",
	"tx.NFTokenBurn":                 "{account} burned NFT {token}",
	"tx.NFTokenCreateOffer.sell":     "{account} offered NFT {token} for sale at {amount}",
	"tx.NFTokenCreateOffer.buy":      "{account} offered {amount} to {owner} for NFT {token}",
	"tx.NFTokenCancelOffer":          "{account} cancelled {count} NFT offers",
	"tx.NFTokenAcceptOffer":          "{account} accepted an offer for NFT {token}",
	"tx.NFTokenAcceptOffer.sell":     "{account} bought NFT {token} from {seller} for {amount}",
	"tx.NFTokenAcceptOffer.buy":      "{account} sold NFT {token} to {buyer} for {amount}",
	"tx.NFTokenAcceptOffer.brokered": "{account} brokered the sale of NFT {token} for a fee of {fee}",

	"tx.AMMCreate":   "{account} created an AMM pool with {amount} and {amount2} at a {fee} trading fee",
	"tx.AMMDeposit":  "{account} deposited into the {asset}/{asset2} pool",
	"tx.AMMWithdraw": "{account} withdrew from the {asset}/{asset2} pool",
	"tx.AMMVote":     "{account} voted for a {fee} trading fee on the {asset}/{asset2} pool",
	"tx.AMMBid":      "{account} bid for the auction slot of the {asset}/{asset2} pool",
	"tx.AMMDelete":   "{account} deleted the {asset}/{asset2} pool",
	"tx.Clawback":    "{account} clawed back {amount} from {holder}",
	"tx.DIDSet":      "{account} updated its DID",
	"tx.DIDSet.uri":  "{account} set its DID to {uri}",

	"tx.URITokenMint":            "{account} minted a URI token for {uri}",
	"uritoken.forSale":           "For sale at {amount}.",
	"tx.URITokenBurn":            "{account} burned URI token {token}",
	"tx.URITokenBuy":             "{account} bought URI token {token} for {amount}",
	"tx.URITokenCreateSellOffer": "{account} offered URI token {token} for sale at {amount}",
	"tx.URITokenCancelSellOffer": "{account} withdrew URI token {token} from sale",

	"tx.SetHook":            "{account} configured {count} hooks",
	"tx.Invoke":             "{account} invoked its hooks",
	"tx.Invoke.destination": "{account} invoked the hooks of {destination}",
	"tx.Import":             "{account} imported a burn proof",
	"tx.ClaimReward":        "{account} claimed rewards from {issuer}",
	"tx.ClaimReward.optOut": "{account} opted out of rewards",
	"tx.Remit":              "{account} remitted {amounts} amounts and {tokens} URI tokens to {destination}",
	"remit.mint":            "Mints a URI token for {uri}.",

	"tx.EnableAmendment.enabled":      "Amendment {amendment} enabled",
	"tx.EnableAmendment.gotMajority":  "Amendment {amendment} gained majority support",
	"tx.EnableAmendment.lostMajority": "Amendment {amendment} lost majority support",
	"tx.SetFee":                       "Fees changed: base fee {baseFee}, reserve {reserveBase}, owner reserve {reserveIncrement}",
	"tx.UNLModify.disable":            "Validator {validator} added to the negative UNL",
	"tx.UNLModify.enable":             "Validator {validator} removed from the negative UNL",

	"obj.AccountRoot":       "{account} holds {balance} and owns {owned} objects",
	"obj.RippleState":       "{account} holds {balance} with a limit of {limit}",
	"obj.Offer":             "{account} offers {takerGets} for {takerPays}, expiring {expiration}",
	"obj.Escrow":            "{account} escrows {amount} for {destination}, finishable after {finishAfter}, cancellable after {cancelAfter}",
	"obj.Check":             "{account} wrote a check of up to {amount} to {destination}, expiring {expiration}",
	"obj.PayChannel":        "Channel from {account} to {destination} with {remaining} remaining and a settle delay of {delay}s",
	"obj.Ticket":            "{account} holds ticket {sequence}",
	"obj.DepositPreauth":    "{account} accepts deposits from {authorized}",
	"obj.SignerList":        "Signer list of {signers} signers with quorum {quorum} of total weight {weight}",
	"obj.NFTokenOffer.sell": "{owner} sells NFT {token} for {amount}, expiring {expiration}",
	"obj.NFTokenOffer.buy":  "{owner} offers {amount} for NFT {token}, expiring {expiration}",
	"obj.URIToken":          "URI token of {owner} issued by {issuer} for {uri}",
	"obj.AMM":               "AMM pool {account} of {asset}/{asset2} at a {fee} trading fee",
	"obj.DID":               "DID of {account} at {uri}",
}
