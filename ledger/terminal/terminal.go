// Package terminal formats ledger entities and explanations for a terminal
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/explain"
	"github.com/anyswap/xrpl-txmodel/ledger/object"
	"github.com/anyswap/xrpl-txmodel/ledger/txn"
	"github.com/fatih/color"
)

// Flag controls rendering
type Flag uint32

// flags
const (
	Indent Flag = 1 << iota
	DoubleIndent

	ShowHash
	ShowFactors
)

// Default flag
var Default = ShowFactors

var (
	labelStyle     = color.New(color.FgCyan, color.Bold)
	leStyle        = color.New(color.FgWhite)
	txStyle        = color.New(color.FgGreen)
	draftStyle     = color.New(color.FgYellow)
	failedStyle    = color.New(color.FgRed)
	partyStyle     = color.New(color.FgBlue)
	incStyle       = color.New(color.FgGreen)
	decStyle       = color.New(color.FgRed)
	potentialStyle = color.New(color.FgYellow)
	neutralStyle   = color.New(color.FgHiBlack)
	assetStyle     = color.New(color.FgMagenta)
	infoStyle      = color.New(color.FgRed)
)

// BoolSymbol is a tick or a cross
func BoolSymbol(v bool) string {
	if v {
		return "✓"
	}
	return "✗"
}

// MemoSymbol ticks transactions carrying memos
func MemoSymbol(tx txn.Transaction) string {
	return BoolSymbol(len(tx.Common().Memos()) > 0)
}

func defaultUint32(v *uint32) uint32 {
	if v != nil {
		return *v
	}
	return 0
}

type bundle struct {
	color  *color.Color
	format string
	values []interface{}
	flag   Flag
}

func newObjectBundle(o object.Object, flag Flag) *bundle {
	var (
		format = "%-14s %-64s "
		values = []interface{}{o.LedgerEntryType(), o.Index()}
	)
	switch le := o.(type) {
	case *object.AccountRoot:
		format += "%-34s %08X %s"
		values = append(values, le.Account(), le.RawFlags(), le.Balance())
	case *object.RippleState:
		format += "%s %s %s"
		values = append(values, le.Balance(), le.HighLimit(), le.LowLimit())
	case *object.Offer:
		format += "%-34s %-9d %s => %s"
		values = append(values, le.Account(), le.Sequence(), le.TakerGets(), le.TakerPays())
	case *object.Escrow:
		format += "%-34s => %-34s %s"
		values = append(values, le.Account(), le.Destination(), le.Amount())
	case *object.Check:
		format += "%-34s => %-34s %s"
		values = append(values, le.Account(), le.Destination(), le.SendMax())
	default:
		if !o.IsRecognized() {
			format += "(unrecognized)"
		}
	}
	return &bundle{
		color:  leStyle,
		format: strings.TrimRight(format, " "),
		values: values,
		flag:   flag,
	}
}

func newTxBundle(tx txn.Transaction, flag Flag) *bundle {
	var (
		base   = tx.Common()
		format = "%s %-24s %-10s %s %-34s %-9d "
		values = []interface{}{resultSymbol(tx), tx.TransactionType(), base.Fee(), MemoSymbol(tx), tx.Account(), base.Sequence()}
	)
	if flag&ShowHash > 0 {
		format = "%s " + format
		values = append([]interface{}{tx.Hash()}, values...)
	}
	switch v := tx.(type) {
	case *txn.Payment:
		format += "=> %-34s %s"
		values = append(values, v.Destination(), v.Amount())
	case *txn.OfferCreate:
		format += "%-9d %s => %s"
		values = append(values, defaultUint32(v.OfferSequence()), v.TakerGets(), v.TakerPays())
	case *txn.TrustSet:
		format += "%s %d %d"
		values = append(values, v.LimitAmount(), defaultUint32(v.QualityIn()), defaultUint32(v.QualityOut()))
	}
	b := &bundle{
		color:  txStyle,
		format: strings.TrimRight(format, " "),
		values: values,
		flag:   flag,
	}
	switch {
	case tx.Meta() == nil:
		b.color = draftStyle
	case !base.IsSuccess():
		b.color = failedStyle
	}
	return b
}

func resultSymbol(tx txn.Transaction) string {
	if tx.Meta() == nil {
		return "?"
	}
	return BoolSymbol(tx.Common().IsSuccess())
}

func newBundle(value interface{}, flag Flag) (*bundle, error) {
	switch v := value.(type) {
	case txn.Transaction:
		return newTxBundle(v, flag), nil
	case object.Object:
		return newObjectBundle(v, flag), nil
	case *codec.Amount:
		return &bundle{color: leStyle, format: "%s", values: []interface{}{v}, flag: flag}, nil
	case explain.MonetaryFactor:
		return factorBundle(v, flag), nil
	case *explain.Party:
		return &bundle{color: partyStyle, format: "%s", values: []interface{}{partyString(v)}, flag: flag}, nil
	case fmt.Stringer:
		return &bundle{color: infoStyle, format: "%s", values: []interface{}{v}, flag: flag}, nil
	default:
		return nil, fmt.Errorf("cannot format %T", value)
	}
}

func factorBundle(f explain.MonetaryFactor, flag Flag) *bundle {
	amount := f.Amount
	b := &bundle{
		format: "%-3s %-16s %s",
		values: []interface{}{string(f.Action), string(f.Effect), &amount},
		flag:   flag,
	}
	switch {
	case f.Effect == explain.NoEffect:
		b.color = neutralStyle
	case f.Effect == explain.PotentialEffect:
		b.color = potentialStyle
	case f.Action == explain.Dec:
		b.color = decStyle
	default:
		b.color = incStyle
	}
	return b
}

func partyString(p *explain.Party) string {
	if p == nil {
		return "-"
	}
	if p.Tag != nil {
		return fmt.Sprintf("%s:%d", p.Address, *p.Tag)
	}
	return p.Address.String()
}

func indent(flag Flag) string {
	switch {
	case flag&Indent > 0:
		return "    "
	case flag&DoubleIndent > 0:
		return "        "
	default:
		return ""
	}
}

// Fprintln writes one formatted line of value to w
func Fprintln(w io.Writer, value interface{}, flag Flag) (int, error) {
	b, err := newBundle(value, flag)
	if err != nil {
		return 0, err
	}
	return b.color.Fprintf(w, indent(flag)+b.format+"\n", b.values...)
}

// Println prints one formatted line of value to stdout
func Println(value interface{}, flag Flag) {
	if _, err := Fprintln(color.Output, value, flag); err != nil {
		_, _ = infoStyle.Fprintln(os.Stderr, err.Error())
	}
}

// Sprint formats value on one line
func Sprint(value interface{}, flag Flag) string {
	b, err := newBundle(value, flag)
	if err != nil {
		return fmt.Sprintf("Cannot format: %+v", value)
	}
	return b.color.Sprintf(indent(flag)+b.format, b.values...)
}

func amountList(amounts []*codec.Amount) string {
	if len(amounts) == 0 {
		return "-"
	}
	parts := make([]string, len(amounts))
	for i, a := range amounts {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}

// FprintExplanation writes a multi line rendering of x to w
func FprintExplanation(w io.Writer, x *explain.Explanation, flag Flag) error {
	pad := indent(flag)
	lines := []struct {
		style *color.Color
		text  string
	}{
		{labelStyle, x.Label},
		{leStyle, x.Description},
		{partyStyle, fmt.Sprintf("%-8s %s", "start", partyString(x.Participants.Start))},
		{partyStyle, fmt.Sprintf("%-8s %s", "through", partyString(x.Participants.Through))},
		{partyStyle, fmt.Sprintf("%-8s %s", "end", partyString(x.Participants.End))},
	}
	for _, line := range lines {
		if line.text == "" {
			continue
		}
		if _, err := line.style.Fprintln(w, pad+line.text); err != nil {
			return err
		}
	}
	if x.Monetary != nil {
		if _, err := incStyle.Fprintf(w, "%s%-8s %s\n", pad, "inc", amountList(x.Monetary.Mutate.Inc)); err != nil {
			return err
		}
		if _, err := decStyle.Fprintf(w, "%s%-8s %s\n", pad, "dec", amountList(x.Monetary.Mutate.Dec)); err != nil {
			return err
		}
		if flag&ShowFactors > 0 {
			for _, f := range x.Monetary.Factor {
				if _, err := Fprintln(w, f, flag&^(Indent|DoubleIndent)|DoubleIndent); err != nil {
					return err
				}
			}
		}
	}
	for _, a := range x.Assets {
		id := a.NFTokenID
		if id == "" {
			id = a.URITokenID
		}
		if _, err := assetStyle.Fprintf(w, "%s%-8s %s %s\n", pad, a.Type, id, a.Owner); err != nil {
			return err
		}
	}
	return nil
}

// PrintExplanation prints x to stdout
func PrintExplanation(x *explain.Explanation, flag Flag) {
	if err := FprintExplanation(color.Output, x, flag); err != nil {
		_, _ = infoStyle.Fprintln(os.Stderr, err.Error())
	}
}
