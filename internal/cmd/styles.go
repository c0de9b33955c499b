package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jrsteele09/go-blog-client/internal/utils"
	"github.com/jrsteele09/go-blog-client/posts"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	metaStyle  = lipgloss.NewStyle().Faint(true)
	draftStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	ownerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// renderPost prints one post line with its metadata. owned controls whether
// the editable marker is shown; the marker is the only hint, non-owned posts
// simply render without it.
func renderPost(post posts.Post, owned bool) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(post.Title))
	if post.Status == posts.StatusDraft {
		b.WriteString(" " + draftStyle.Render("[draft]"))
	}
	if owned {
		b.WriteString(" " + ownerStyle.Render("[yours]"))
	}
	b.WriteString("\n")

	category := utils.Value(post.Category)
	meta := []string{fmt.Sprintf("id %s", post.ID)}
	if post.Author.Name != "" {
		meta = append(meta, "by "+post.Author.Name)
	} else if post.Author.Email != "" {
		meta = append(meta, "by "+post.Author.Email)
	}
	if category.Name != "" {
		meta = append(meta, "in "+category.Name)
	}
	if len(post.Tags) > 0 {
		names := make([]string, 0, len(post.Tags))
		for _, tag := range post.Tags {
			names = append(names, tag.Name)
		}
		meta = append(meta, "tags: "+strings.Join(names, ", "))
	}
	b.WriteString(metaStyle.Render(strings.Join(meta, " · ")))

	if post.Summary != "" {
		b.WriteString("\n" + post.Summary)
	}
	return b.String()
}
