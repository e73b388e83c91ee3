package documents

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"msx-backend/msx/actions"
	"msx-backend/msx/models"
)

// Fixed texts of the empty-query document.
const (
	ErrorHeadline    = "Ошибка поиска"
	EmptyQueryTitle  = "Пустой запрос"
	EmptyQueryDetail = "Пожалуйста, введите поисковый запрос"
)

// resultNamespace seeds the deterministic ids of placeholder results.
var resultNamespace = uuid.MustParse("6f1c0b52-4a8e-4b8e-9a2e-8d3f5c1e7a10")

// BuildSearchForm returns the form the plugin answers "init" with.
func BuildSearchForm() (models.UIDocument, error) {
	commit, err := actions.Commit(models.PhaseSearch, models.QueryKey, SearchControlKey)
	if err != nil {
		return models.UIDocument{}, fmt.Errorf("search form commit action: %w", err)
	}

	return models.UIDocument{
		Type:     models.TypeList,
		Focus:    true,
		Headline: "Поиск контента",
		Template: &models.Template{Type: "separate", Layout: "0,0,2,6", Color: "msx-glass"},
		Items: []models.Item{
			{Layout: "0,0,12,1", Type: models.ItemSpace},
			{
				Layout: "0,1,12,1",
				Type:   models.ItemControl,
				Control: &models.Control{
					Type:        "input",
					Key:         SearchControlKey,
					Label:       "Поисковый запрос:",
					Placeholder: "Введите название фильма или сериала...",
				},
			},
			{Layout: "0,2,12,1", Type: models.ItemSpace},
			{
				Layout:  "0,3,12,6",
				Type:    models.ItemControl,
				Control: &models.Control{Type: "keyboard", Target: SearchControlKey},
			},
			{Layout: "0,9,12,1", Type: models.ItemSpace},
			{
				Layout:    "4,10,4,1",
				Type:      models.ItemButton,
				Label:     "🔍 Поиск",
				Alignment: "center",
				Selection: []models.Selection{{Important: true, Key: "enter", Action: commit}},
			},
			{Layout: "0,11,12,1", Type: models.ItemSpace},
		},
	}, nil
}

// IsBlankQuery reports whether q is empty or consists only of the characters
// a browser's String.prototype.trim removes. U+FEFF counts as blank, U+0085 does not.
func IsBlankQuery(q string) bool {
	return strings.TrimFunc(q, isTrimmable) == ""
}

func isTrimmable(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// EmptyQueryDocument is shown instead of results when the query is blank.
func EmptyQueryDocument() models.UIDocument {
	return models.UIDocument{
		Type:     models.TypeList,
		Headline: ErrorHeadline,
		Items: []models.Item{
			{Title: EmptyQueryTitle, Description: EmptyQueryDetail},
		},
	}
}

// ErrNoPlayAction is returned when results are requested without a play action.
var ErrNoPlayAction = errors.New("result options carry no play action")

// ResultOptions shapes the placeholder results. PlayAction is the prebuilt
// action every result item fires; build it with NewResultOptions.
type ResultOptions struct {
	Count      int
	PlayAction string
}

// NewResultOptions builds the play action for sampleVideoURL once, so a URL the
// action grammar rejects fails at startup instead of on every search.
func NewResultOptions(count int, sampleVideoURL string) (ResultOptions, error) {
	play, err := actions.Video(sampleVideoURL)
	if err != nil {
		return ResultOptions{}, fmt.Errorf("result action: %w", err)
	}
	return ResultOptions{Count: count, PlayAction: play}, nil
}

// ResultsDocument synthesizes placeholder results for a non-blank query. The
// query is interpolated verbatim; escaping is left to the serializer.
func ResultsDocument(query string, opts ResultOptions) (models.UIDocument, error) {
	count := opts.Count
	if count < 1 {
		count = 1
	}
	if opts.PlayAction == "" {
		return models.UIDocument{}, ErrNoPlayAction
	}

	items := make([]models.Item, 0, count)
	for i := 1; i <= count; i++ {
		title := `Результат для "` + query + `"`
		if i > 1 {
			title += " #" + strconv.Itoa(i)
		}
		items = append(items, models.Item{
			ID:          uuid.NewSHA1(resultNamespace, []byte(query+"#"+strconv.Itoa(i))).String(),
			Title:       title,
			Description: "Тестовый результат поиска",
			Icon:        "movie",
			Action:      opts.PlayAction,
		})
	}

	return models.UIDocument{
		Type:     models.TypeList,
		Name:     `Результаты поиска: "` + query + `"`,
		Headline: `Найдено для "` + query + `"`,
		Template: &models.Template{Type: "separate", Layout: "0,0,12,2", Color: "msx-glass"},
		Items:    items,
	}, nil
}
