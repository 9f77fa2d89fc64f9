package list

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/giftbox-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const budgetBarWidth = 24

// SessionView is what `auth status` shows about the signed-in user.
type SessionView struct {
	Profile       string
	BaseURL       string
	Authenticated bool
	User          *domain.User
	ExpiresAt     time.Time
	Now           time.Time
}

func RenderGifts(gifts []domain.Gift, meta *domain.PageMeta) (string, error) {
	return render(func(s styles) string { return giftsView(gifts, meta, s) })
}

func RenderGift(gift domain.Gift) (string, error) {
	return render(func(s styles) string { return giftBlock(gift, s) })
}

func RenderRecipients(recipients []domain.Recipient, meta *domain.PageMeta) (string, error) {
	return render(func(s styles) string { return recipientsView(recipients, meta, s) })
}

func RenderRecipient(recipient domain.Recipient) (string, error) {
	return render(func(s styles) string { return recipientBlock(recipient, s) })
}

func RenderBudget(user domain.User) (string, error) {
	return render(func(s styles) string { return budgetView(user, s) })
}

func RenderProfiles(profiles []domain.Profile, active string) (string, error) {
	return render(func(s styles) string { return profilesView(profiles, active, s) })
}

func RenderSession(view SessionView) (string, error) {
	return render(func(s styles) string { return sessionView(view, s) })
}

func giftsView(gifts []domain.Gift, meta *domain.PageMeta, s styles) string {
	lines := []string{s.title.Render("Cadeaux"), s.header.Render(countLine("gifts", len(gifts), meta))}
	if len(gifts) == 0 {
		lines = append(lines, s.empty.Render("No gifts yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, gift := range gifts {
		lines = append(lines, s.section.Render(giftBlock(gift, s)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func giftBlock(gift domain.Gift, s styles) string {
	title := lipgloss.JoinHorizontal(lipgloss.Top,
		s.name.Render(gift.Name),
		" ",
		statusBadge(gift.Status),
	)

	parts := []string{title, s.muted.Render(gift.ID)}
	details := make([]string, 0, 3)
	if gift.Price != nil {
		details = append(details, "price: "+formatAmount(*gift.Price))
	}
	if gift.Quantity > 1 {
		details = append(details, fmt.Sprintf("qty: %d", gift.Quantity))
	}
	if n := len(gift.RecipientIDs); n > 0 {
		details = append(details, fmt.Sprintf("recipients: %d", n))
	}
	if len(details) > 0 {
		parts = append(parts, s.detail.Render(strings.Join(details, "  ")))
	}
	if gift.URL != nil && *gift.URL != "" {
		parts = append(parts, s.muted.Render(*gift.URL))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func statusBadge(status domain.GiftStatus) string {
	color, ok := statusColors[string(status)]
	if !ok {
		color = lipgloss.Color("252")
	}
	return lipgloss.NewStyle().Foreground(color).Render("[" + status.Label() + "]")
}

func recipientsView(recipients []domain.Recipient, meta *domain.PageMeta, s styles) string {
	lines := []string{s.title.Render("Destinataires"), s.header.Render(countLine("recipients", len(recipients), meta))}
	if len(recipients) == 0 {
		lines = append(lines, s.empty.Render("No recipients yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, recipient := range recipients {
		lines = append(lines, s.section.Render(recipientBlock(recipient, s)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func recipientBlock(recipient domain.Recipient, s styles) string {
	parts := []string{s.name.Render(recipient.Name), s.muted.Render(recipient.ID)}
	if recipient.Notes != nil && strings.TrimSpace(*recipient.Notes) != "" {
		parts = append(parts, s.detail.Render(*recipient.Notes))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func countLine(noun string, shown int, meta *domain.PageMeta) string {
	if meta == nil {
		return fmt.Sprintf("%s: %d", noun, shown)
	}

	pages := meta.TotalPages
	if pages < 1 {
		pages = 1
	}
	line := fmt.Sprintf("%s: %d of %d  page %d/%d", noun, shown, meta.Total, meta.Page, pages)
	if meta.HasNext {
		line += fmt.Sprintf("  (next: --page %d)", meta.Page+1)
	}
	return line
}

func budgetView(user domain.User, s styles) string {
	lines := []string{s.title.Render("Budget"), s.header.Render(user.DisplayName())}
	spent := s.key.Render("spent:") + " " + s.detail.Render(formatAmount(user.Spent))

	if !user.HasBudget() {
		lines = append(lines, spent, s.empty.Render("No budget set."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	budget := parseAmount(*user.Budget)
	used := 0.0
	if budget > 0 {
		used = parseAmount(user.Spent) / budget * 100
	}

	remaining := ""
	if user.Remaining != nil {
		remaining = formatAmount(*user.Remaining)
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top,
		s.key.Render("used:"),
		" ",
		renderProgressBar(used, budgetBarWidth, s),
		" ",
		lipgloss.NewStyle().Foreground(usageColor(used)).Render(fmt.Sprintf("%3.0f%%", used)),
	)

	lines = append(lines,
		s.key.Render("budget:")+" "+s.detail.Render(formatAmount(*user.Budget)),
		spent,
		s.key.Render("remaining:")+" "+s.detail.Render(remaining),
		bar,
	)
	if used > 100 {
		lines = append(lines, s.warning.Render("Budget exceeded"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func profilesView(profiles []domain.Profile, active string, s styles) string {
	lines := []string{s.title.Render("Profiles"), s.header.Render(fmt.Sprintf("profiles: %d", len(profiles)))}
	if len(profiles) == 0 {
		lines = append(lines, s.empty.Render("No profile has signed in yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, profile := range profiles {
		marker := "  "
		if profile.Name == active {
			marker = "* "
		}
		parts := []string{
			s.name.Render(marker + profile.Name),
			s.detail.Render("  " + profile.BaseURL),
		}
		if profile.UserEmail != "" {
			parts = append(parts, s.muted.Render("  user: "+profile.UserEmail))
		}
		if !profile.LastLoginAt.IsZero() {
			parts = append(parts, s.muted.Render("  last login: "+profile.LastLoginAt.Local().Format("2006-01-02 15:04")))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func sessionView(view SessionView, s styles) string {
	lines := []string{
		s.title.Render("Session"),
		s.header.Render(fmt.Sprintf("profile: %s  api: %s", view.Profile, view.BaseURL)),
	}
	if !view.Authenticated || view.User == nil {
		lines = append(lines, s.warning.Render("Not signed in."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines,
		s.name.Render(view.User.DisplayName()),
		s.detail.Render(view.User.Email),
	)
	if !view.ExpiresAt.IsZero() {
		lines = append(lines, s.muted.Render(formatExpiry(view.ExpiresAt, view.Now)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func formatExpiry(expiresAt, now time.Time) string {
	if now.IsZero() {
		return "access expires " + expiresAt.Format(time.RFC3339)
	}
	if !expiresAt.After(now) {
		return "access expired, renews on next request"
	}

	remaining := expiresAt.Sub(now)
	minutes := int(math.Ceil(remaining.Minutes()))
	if minutes < 60 {
		unit := "minutes"
		if minutes == 1 {
			unit = "minute"
		}
		return fmt.Sprintf("access expires in %d %s", minutes, unit)
	}
	return fmt.Sprintf("access expires at %s", expiresAt.Format("15:04"))
}

func renderProgressBar(usedPercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(usedPercent) / 100))
	fill := s.barFill.Render(strings.Repeat("=", filled))
	rest := s.barEmpty.Render(strings.Repeat("-", width-filled))

	return lipgloss.JoinHorizontal(lipgloss.Top, s.barBracket.Render("["), fill, rest, s.barBracket.Render("]"))
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// usageColor moves from green to red as the budget is consumed.
func usageColor(percent float64) lipgloss.Color {
	switch {
	case percent >= 100:
		return lipgloss.Color("196")
	case percent >= 80:
		return lipgloss.Color("208")
	case percent >= 50:
		return lipgloss.Color("220")
	default:
		return lipgloss.Color("42")
	}
}

func parseAmount(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return value
}

// formatAmount keeps the server's decimal string but pins two places.
func formatAmount(raw string) string {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return raw
	}
	return strconv.FormatFloat(value, 'f', 2, 64) + " €"
}
