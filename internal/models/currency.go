package models

// CurrencyOption is a currency preset offered to clients. The locale and
// decimals flag feed straight into the receipt's formatting policy.
type CurrencyOption struct {
	Country         string `json:"country"`
	Code            string `json:"code"`
	Symbol          string `json:"symbol"`
	Locale          string `json:"locale"`
	DefaultDecimals bool   `json:"defaultDecimals"`
}

// CurrencyOptions lists the supported currency presets, sorted by country.
var CurrencyOptions = []CurrencyOption{
	{Country: "China", Code: "CNY", Symbol: "¥", Locale: "zh-CN", DefaultDecimals: true},
	{Country: "Germany", Code: "EUR", Symbol: "€", Locale: "de-DE", DefaultDecimals: true},
	{Country: "India", Code: "INR", Symbol: "₹", Locale: "en-IN", DefaultDecimals: true},
	{Country: "Indonesia", Code: "IDR", Symbol: "Rp", Locale: "id-ID", DefaultDecimals: false},
	{Country: "Japan", Code: "JPY", Symbol: "¥", Locale: "ja-JP", DefaultDecimals: false},
	{Country: "Malaysia", Code: "MYR", Symbol: "RM", Locale: "ms-MY", DefaultDecimals: true},
	{Country: "Netherlands", Code: "EUR", Symbol: "€", Locale: "nl-NL", DefaultDecimals: true},
	{Country: "Philippines", Code: "PHP", Symbol: "₱", Locale: "en-PH", DefaultDecimals: true},
	{Country: "Russia", Code: "RUB", Symbol: "₽", Locale: "ru-RU", DefaultDecimals: true},
	{Country: "Singapore", Code: "SGD", Symbol: "S$", Locale: "en-SG", DefaultDecimals: true},
	{Country: "South Korea", Code: "KRW", Symbol: "₩", Locale: "ko-KR", DefaultDecimals: false},
	{Country: "Thailand", Code: "THB", Symbol: "฿", Locale: "th-TH", DefaultDecimals: true},
	{Country: "United Arab Emirates", Code: "AED", Symbol: "AED", Locale: "en-AE", DefaultDecimals: true},
	{Country: "United Kingdom", Code: "GBP", Symbol: "£", Locale: "en-GB", DefaultDecimals: true},
	{Country: "United States", Code: "USD", Symbol: "$", Locale: "en-US", DefaultDecimals: true},
	{Country: "Vietnam", Code: "VND", Symbol: "₫", Locale: "vi-VN", DefaultDecimals: false},
}

// DefaultColors is the palette cycled through when adding friends.
var DefaultColors = []string{
	"#EF4444", "#F97316", "#F59E0B", "#EAB308", "#84CC16",
	"#22C55E", "#10B981", "#14B8A6", "#06B6D4", "#0EA5E9",
	"#3B82F6", "#6366F1", "#8B5CF6", "#A855F7", "#D946EF",
	"#EC4899", "#F43F5E", "#64748B", "#78716C", "#4B5563",
}
