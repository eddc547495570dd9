// Package i18n provides label lookup for the permit certificate.
// Lookup is a pure map access that falls back to the key itself on a
// miss, so it never fails.
package i18n

import "strings"

// Lang is a supported interface language.
type Lang string

const (
	LangHU Lang = "hu"
	LangRO Lang = "ro"
	LangEN Lang = "en"
	LangDE Lang = "de"
)

// DefaultLang is used when the requested language is unknown.
const DefaultLang = LangHU

// Parse normalizes a language code, defaulting to Hungarian.
func Parse(s string) Lang {
	switch Lang(strings.ToLower(strings.TrimSpace(s))) {
	case LangHU:
		return LangHU
	case LangRO:
		return LangRO
	case LangEN:
		return LangEN
	case LangDE:
		return LangDE
	}
	return DefaultLang
}

// T returns the label lookup for the given language.
func T(lang Lang) func(key string) string {
	catalog, ok := translations[lang]
	if !ok {
		catalog = translations[DefaultLang]
	}
	return func(key string) string {
		if v, ok := catalog[key]; ok {
			return v
		}
		return key
	}
}

var translations = map[Lang]map[string]string{
	LangEN: {
		"app_title":            "Transit Permit Application",
		"applicant_section":    "Applicant Data",
		"last_name":            "Last Name",
		"first_name":           "First Name",
		"national_id":          "Personal Identification Number",
		"email":                "Email",
		"organization_name":    "Company Name",
		"tax_id":               "Tax ID",
		"organization_email":   "Company Email",
		"vehicle_section":      "Vehicle and Route Data",
		"make":                 "Make",
		"plate":                "License Plate",
		"max_weight":           "Maximum Weight",
		"route_description":    "Route Description",
		"zone":                 "Zone",
		"validity_fee_section": "Validity and Fee",
		"start_date":           "Start Date",
		"period":               "Period",
		"valid_range":          "Valid",
		"permit_price":         "Permit price:",
		"issue_date":           "Issued",
		"daily":                "Daily",
		"monthly":              "Monthly",
		"semi-annually":        "Semi-annually",
		"annually":             "Annually",
	},
	LangHU: {
		"app_title":            "Áthaladási engedély igénylés",
		"applicant_section":    "Igénylő adatai",
		"last_name":            "Vezetéknév",
		"first_name":           "Keresztnév",
		"national_id":          "Személyi szám",
		"email":                "E-mail",
		"organization_name":    "Cégnév",
		"tax_id":               "Adószám",
		"organization_email":   "Céges e-mail",
		"vehicle_section":      "Jármű és útvonal adatai",
		"make":                 "Márka",
		"plate":                "Rendszám",
		"max_weight":           "Megengedett össztömeg",
		"route_description":    "Útvonal leírása",
		"zone":                 "Övezet",
		"validity_fee_section": "Érvényesség és díj",
		"start_date":           "Kezdő dátum",
		"period":               "Időszak",
		"valid_range":          "Érvényes",
		"permit_price":         "Engedély díja:",
		"issue_date":           "Kiállítva",
		"daily":                "Napi",
		"monthly":              "Havi",
		"semi-annually":        "Féléves",
		"annually":             "Éves",
	},
	LangRO: {
		"app_title":            "Cerere autorizație de liberă trecere",
		"applicant_section":    "Datele solicitantului",
		"last_name":            "Nume",
		"first_name":           "Prenume",
		"national_id":          "CNP",
		"email":                "Email",
		"organization_name":    "Denumirea firmei",
		"tax_id":               "Cod fiscal",
		"organization_email":   "Email firmă",
		"vehicle_section":      "Date vehicul și traseu",
		"make":                 "Marca",
		"plate":                "Număr de înmatriculare",
		"max_weight":           "Masa maximă autorizată",
		"route_description":    "Descrierea traseului",
		"zone":                 "Zona",
		"validity_fee_section": "Valabilitate și taxă",
		"start_date":           "Data de început",
		"period":               "Perioada",
		"valid_range":          "Valabil",
		"permit_price":         "Taxa autorizației:",
		"issue_date":           "Emis",
		"daily":                "Zilnic",
		"monthly":              "Lunar",
		"semi-annually":        "Semestrial",
		"annually":             "Anual",
	},
	LangDE: {
		"app_title":            "Antrag auf Durchfahrtsgenehmigung",
		"applicant_section":    "Angaben zum Antragsteller",
		"last_name":            "Nachname",
		"first_name":           "Vorname",
		"national_id":          "Personenkennziffer",
		"email":                "E-Mail",
		"organization_name":    "Firmenname",
		"tax_id":               "Steuernummer",
		"organization_email":   "Firmen-E-Mail",
		"vehicle_section":      "Fahrzeug- und Streckendaten",
		"make":                 "Marke",
		"plate":                "Kennzeichen",
		"max_weight":           "Zulässiges Gesamtgewicht",
		"route_description":    "Streckenbeschreibung",
		"zone":                 "Zone",
		"validity_fee_section": "Gültigkeit und Gebühr",
		"start_date":           "Startdatum",
		"period":               "Zeitraum",
		"valid_range":          "Gültig",
		"permit_price":         "Genehmigungsgebühr:",
		"issue_date":           "Ausgestellt",
		"daily":                "Täglich",
		"monthly":              "Monatlich",
		"semi-annually":        "Halbjährlich",
		"annually":             "Jährlich",
	},
}
