package sheets

// FieldKind selects the coercion rule applied to a field's raw cells.
type FieldKind int

const (
	// KindText stringifies and trims; absent cells become "".
	KindText FieldKind = iota
	// KindNumber parses locale-tolerant numbers; absent or unparsable
	// cells become 0 (the defined default for monetary fields).
	KindNumber
	// KindNumberNullable is KindNumber but absent/empty cells become nil,
	// distinguishing "not applicable" from "value is zero".
	KindNumberNullable
	// KindDate accepts a date serial, DD/MM/YYYY, or ISO YYYY-MM-DD;
	// anything else becomes nil.
	KindDate
	// KindTextNullable is KindText but empty cells become nil.
	KindTextNullable
)

// Field is a canonical column identity: a stable internal key, the
// display label as authored in the sheet header (decorative glyphs
// included), and the value kind.
type Field struct {
	Key   string
	Label string
	Kind  FieldKind
}

// ExpensesTab is the tab name the expense table lives in.
const ExpensesTab = "💰Dépenses"

// ExpensesColumnSpan covers every mapped column of the expenses tab.
const ExpensesColumnSpan = "A:Q"

// Field keys of the expenses schema. These identifiers are stable across
// releases; only the display labels drift.
const (
	FieldLabel          = "libelle"
	FieldAmountTTC      = "montantTTC"
	FieldPaymentDate    = "datePaiement"
	FieldInvoice        = "facture"
	FieldCategory       = "categorie"
	FieldType           = "type"
	FieldDuration       = "duree"
	FieldDeadline       = "echeance"
	FieldDaysLeft       = "joursRestants"
	FieldAnnualEstimate = "estimationAnnuel"
	FieldURL            = "url"
	FieldMonthlyCost    = "mensualite"
	FieldCumulative     = "cumule"
	FieldID             = "id"
)

// ExpensesSchema maps the expenses tab. Label text mirrors the sheet
// header as currently authored; resolution tolerates cosmetic drift.
var ExpensesSchema = []Field{
	{Key: FieldLabel, Label: "🧾 Libellé", Kind: KindText},
	{Key: FieldAmountTTC, Label: "💶 Montant TTC", Kind: KindNumber},
	{Key: FieldPaymentDate, Label: "📅 Date de paiement", Kind: KindDate},
	{Key: FieldInvoice, Label: "📎 Facture", Kind: KindText},
	{Key: FieldCategory, Label: "🏷️ Catégorie", Kind: KindText},
	{Key: FieldType, Label: "📌 Type", Kind: KindText},
	{Key: FieldDuration, Label: "🗓️ Durée", Kind: KindNumberNullable},
	{Key: FieldDeadline, Label: "📅 Échéance", Kind: KindDate},
	{Key: FieldDaysLeft, Label: "⏳ Jours restants", Kind: KindTextNullable},
	{Key: FieldAnnualEstimate, Label: "🗓️ Estimation Annuel", Kind: KindNumber},
	{Key: FieldURL, Label: "🔗 URL Gestion", Kind: KindText},
	{Key: FieldMonthlyCost, Label: "💸 Mensualité", Kind: KindNumber},
	{Key: FieldCumulative, Label: "📉 Cumulé à ce jour", Kind: KindNumber},
	{Key: FieldID, Label: "🆔 ID", Kind: KindText},
}

// FieldByKey returns the schema field for key, or nil.
func FieldByKey(schema []Field, key string) *Field {
	for i := range schema {
		if schema[i].Key == key {
			return &schema[i]
		}
	}
	return nil
}
