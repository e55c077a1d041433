package tui

import (
	"context"
	"reflect"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/newsreframer/internal/rewrite"
	"github.com/csheth/newsreframer/internal/theme"
)

type fakeClient struct {
	mu      sync.Mutex
	topics  []string
	result  rewrite.Result
	err     error
	baseURL string
}

func (f *fakeClient) Rewrite(ctx context.Context, topic string) (rewrite.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.topics = append(f.topics, topic)
	return f.result, f.err
}

func (f *fakeClient) BaseURL() string { return f.baseURL }

func (f *fakeClient) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.topics...)
}

func newTestModel(t *testing.T, client rewrite.Client) *model {
	t.Helper()
	teaModel, ok := New(Config{Client: client, Theme: theme.New(theme.Light)}).(*model)
	require.True(t, ok, "expected *model, got %T", teaModel)
	return teaModel
}

func typeTopic(m *model, topic string) {
	m.input.SetValue(topic)
}

func pressEnter(m tea.Model) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

// drain runs cmd and any batched or sequenced commands it expands into,
// returning the leaf messages in order.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	v := reflect.ValueOf(msg)
	if v.IsValid() && v.Kind() == reflect.Slice && v.Type().Elem() == reflect.TypeOf(tea.Cmd(nil)) {
		var msgs []tea.Msg
		for i := 0; i < v.Len(); i++ {
			child, _ := v.Index(i).Interface().(tea.Cmd)
			msgs = append(msgs, drain(child)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

// settleAll feeds job messages produced by cmd back into m.
func settleAll(m tea.Model, cmd tea.Cmd) {
	for _, msg := range drain(cmd) {
		switch msg.(type) {
		case jobSignalMsg, jobResultEnvelope:
			m.Update(msg)
		}
	}
}

func successClient() *fakeClient {
	return &fakeClient{result: rewrite.Result{Outputs: rewrite.NewOutputs(
		rewrite.Entry{Key: "neutral_summary", Value: "A"},
		rewrite.Entry{Key: "curiosity_headline", Value: "B"},
	)}}
}

func TestSubmitEmptyTopicSetsErrorWithoutRequest(t *testing.T) {
	client := successClient()
	m := newTestModel(t, client)
	typeTopic(m, "   ")

	_, cmd := pressEnter(m)
	assert.Nil(t, cmd)
	assert.Empty(t, client.calls())
	assert.Equal(t, "Please enter a topic.", m.errorMessage())
	assert.Equal(t, requestIdle, m.state)
	assert.Contains(t, m.View(), "Please enter a topic.")
}

func TestSubmitIssuesExactlyOneRequestWithTrimmedTopic(t *testing.T) {
	client := successClient()
	m := newTestModel(t, client)
	typeTopic(m, "  student loan interest  ")

	_, cmd := pressEnter(m)
	require.NotNil(t, cmd)
	assert.Equal(t, requestLoading, m.state)
	assert.Empty(t, m.errorMessage())
	_, showing := m.outputs()
	assert.False(t, showing, "results are cleared when a submission starts")

	_, second := pressEnter(m)
	assert.Nil(t, second, "submit is disabled while loading")

	settleAll(m, cmd)
	assert.Equal(t, []string{"student loan interest"}, client.calls())
	assert.Equal(t, requestIdle, m.state)
}

func TestLongTopicIsSentInFull(t *testing.T) {
	client := successClient()
	m := newTestModel(t, client)
	topic := strings.Repeat("a", 300)
	for _, r := range topic {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	_, cmd := pressEnter(m)
	settleAll(m, cmd)
	assert.Equal(t, []string{topic}, client.calls())
}

func TestStatusLineFollowsJobLifecycle(t *testing.T) {
	client := successClient()
	client.baseURL = "https://reframer.example.com"
	m := newTestModel(t, client)
	typeTopic(m, "  wildfires ")

	_, cmd := pressEnter(m)
	msgs := drain(cmd)
	for _, msg := range msgs {
		if _, ok := msg.(jobSignalMsg); ok {
			m.Update(msg)
		}
	}
	assert.Contains(t, m.View(), `Reframing "wildfires" via https://reframer.example.com…`)

	for _, msg := range msgs {
		if _, ok := msg.(jobResultEnvelope); ok {
			m.Update(msg)
		}
	}
	view := m.View()
	assert.NotContains(t, view, "Reframing \"wildfires\"")
	assert.Contains(t, view, `Last request for "wildfires" succeeded in`)
}

func TestLoadingViewShowsBusyButton(t *testing.T) {
	m := newTestModel(t, successClient())
	typeTopic(m, "wildfires")
	assert.Contains(t, m.View(), "↗ Reframe")

	_, cmd := pressEnter(m)
	require.NotNil(t, cmd)
	view := m.View()
	assert.Contains(t, view, "Reframing…")
	assert.NotContains(t, view, "↗ Reframe")
}

func TestSuccessRendersOneCardPerOutput(t *testing.T) {
	m := newTestModel(t, successClient())
	typeTopic(m, "chip export rules")
	_, cmd := pressEnter(m)
	settleAll(m, cmd)

	outputs, ok := m.outputs()
	require.True(t, ok)
	assert.Equal(t, 2, outputs.Len())
	assert.Empty(t, m.errorMessage())

	view := m.View()
	assert.Contains(t, view, "Neutral summary")
	assert.Contains(t, view, "Curiosity headline")
	assert.NotContains(t, view, "Human-interest angle")
	// One border for the input card plus one per result card.
	assert.Equal(t, 3, strings.Count(view, "╭"))
	assert.Less(t, strings.Index(view, "Neutral summary"), strings.Index(view, "Curiosity headline"))
}

func TestHTTPFailureShowsBodyAndNoCards(t *testing.T) {
	client := &fakeClient{err: &rewrite.HTTPError{StatusCode: 429, Body: "rate limited"}}
	m := newTestModel(t, client)
	typeTopic(m, "wildfires")
	_, cmd := pressEnter(m)
	settleAll(m, cmd)

	assert.Equal(t, "rate limited", m.errorMessage())
	_, showing := m.outputs()
	assert.False(t, showing)
	assert.Equal(t, requestIdle, m.state)
	assert.NotContains(t, m.View(), "Neutral summary")
}

func TestNewSubmissionClearsPreviousResults(t *testing.T) {
	client := successClient()
	m := newTestModel(t, client)
	typeTopic(m, "wildfires")
	_, cmd := pressEnter(m)
	settleAll(m, cmd)
	_, showing := m.outputs()
	require.True(t, showing)

	client.err = &rewrite.NetworkError{}
	_, cmd = pressEnter(m)
	settleAll(m, cmd)

	assert.Equal(t, rewrite.FallbackMessage, m.errorMessage())
	_, showing = m.outputs()
	assert.False(t, showing, "errors never leave stale results visible")
}

func TestUnknownKeyRendersRawLabel(t *testing.T) {
	client := &fakeClient{result: rewrite.Result{Outputs: rewrite.NewOutputs(
		rewrite.Entry{Key: "extra_key", Value: "value"},
	)}}
	m := newTestModel(t, client)
	typeTopic(m, "wildfires")
	_, cmd := pressEnter(m)
	settleAll(m, cmd)

	view := m.View()
	assert.Contains(t, view, "extra_key")
	assert.Contains(t, view, "value")
}

func TestEmptyOutputsRenderNoCards(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	typeTopic(m, "wildfires")
	_, cmd := pressEnter(m)
	settleAll(m, cmd)

	outputs, ok := m.outputs()
	require.True(t, ok)
	assert.Zero(t, outputs.Len())
	assert.Equal(t, 1, strings.Count(m.View(), "╭"))
}

func TestStaleJobResultIsIgnored(t *testing.T) {
	m := newTestModel(t, successClient())
	typeTopic(m, "wildfires")
	_, cmd := pressEnter(m)
	require.NotNil(t, cmd)

	m.Update(jobResultEnvelope{
		Snapshot: jobSnapshot{ID: "rewrite-999", Status: jobStatusFailed},
		Payload:  rewriteResultMsg{err: &rewrite.HTTPError{Body: "stale"}},
	})
	assert.Equal(t, requestLoading, m.state)
	assert.Empty(t, m.errorMessage())
}

func TestViewWithoutToggleHidesIt(t *testing.T) {
	m := newTestModel(t, successClient())
	assert.NotContains(t, m.View(), "ctrl+t")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	for _, msg := range drain(cmd) {
		_, toggled := msg.(toggleDisplayModeMsg)
		assert.False(t, toggled)
	}
}

func TestLayoutColumnsFollowWidth(t *testing.T) {
	wide := layoutFor(140)
	assert.Equal(t, 2, wide.columns)
	assert.Equal(t, maxContentWidth, wide.contentWidth)
	assert.Equal(t, (maxContentWidth-columnGap)/2, wide.cardWidth)

	narrow := layoutFor(80)
	assert.Equal(t, 1, narrow.columns)
	assert.Equal(t, 76, narrow.cardWidth)

	tiny := layoutFor(10)
	assert.Equal(t, minContentWidth, tiny.contentWidth)
}

func TestSoberBulletsCardListsItems(t *testing.T) {
	card := renderCard(theme.New(theme.Dark), rewrite.Entry{Key: "sober_bullets", Value: "- first\n• second\nthird"}, 60)
	assert.Contains(t, card, "Sober bullets")
	for _, item := range []string{"• first", "• second", "• third"} {
		assert.Contains(t, card, item)
	}
	assert.NotContains(t, card, "- first")
}
