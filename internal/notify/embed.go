package notify

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

const colorDeal = 0xFF6B6B

// BuildEmbed renders a deal as a Discord rich embed.
func BuildEmbed(deal *domain.Deal) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Type:  discordgo.EmbedTypeRich,
		Title: "Deal Alert: " + deal.Title,
		URL:   deal.URL,
		Color: colorDeal,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Price", Value: FormatMoney(deal.Price, deal.Currency, 2), Inline: true},
			{Name: "Est. Profit", Value: FormatMoney(deal.EstimatedProfit, deal.Currency, 1), Inline: true},
			{Name: "Search", Value: deal.SearchName, Inline: false},
		},
	}
}

// FormatMoney prints an amount with a fixed number of decimals followed by
// the currency symbol, or the ISO code when no symbol is known.
func FormatMoney(amount decimal.Decimal, currency string, places int32) string {
	return amount.StringFixed(places) + " " + currencySymbol(currency)
}

func currencySymbol(code string) string {
	switch strings.ToUpper(code) {
	case "", "EUR":
		return "€"
	case "GBP":
		return "£"
	case "USD":
		return "$"
	default:
		return strings.ToUpper(code)
	}
}
