package bapps

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/c-bata/go-prompt"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/oss-tutor/npmtutor/common"
	"github.com/oss-tutor/npmtutor/configs"
	"github.com/oss-tutor/npmtutor/framework"
	"github.com/oss-tutor/npmtutor/history"
)

// PromptApp wraps go-prompt as application.
type PromptApp struct {
	exited         bool
	currentState   framework.State
	suggestHistory bool
	historyHelper  *history.Helper
	logger         *log.Logger
	prompt         *prompt.Prompt
	config         *configs.Config
}

func NewPromptApp(config *configs.Config, opts ...AppOption) BApp {
	opt := &appOption{}
	for _, o := range opts {
		o(opt)
	}

	// use workspace path to open&store history log
	hh := history.NewHistoryHelper(config.WorkspacePath)
	pa := &PromptApp{
		historyHelper: hh,
		config:        config,
	}
	pa.logger = opt.logger

	historyItems := hh.List("")
	sort.Slice(historyItems, func(i, j int) bool {
		return historyItems[i].Ts < historyItems[j].Ts
	})

	p := prompt.New(pa.promptExecute, pa.completeInput,
		prompt.OptionTitle("npmtutor"),
		prompt.OptionHistory(lo.Map(historyItems, func(hi history.Item, _ int) string { return hi.Cmd })),
		prompt.OptionLivePrefix(pa.livePrefix),
		prompt.OptionPrefixTextColor(prompt.Yellow),
		prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
		prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
		prompt.OptionSuggestionBGColor(prompt.DarkGray),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			// setup exit command
			if strings.ToLower(in) == "exit" && breakline {
				return true
			}
			return false
		}),
		prompt.OptionAddKeyBind(prompt.KeyBind{
			Key: prompt.ControlR,
			Fn: func(buffer *prompt.Buffer) {
				pa.suggestHistory = !pa.suggestHistory
			},
		}),
		// setup InputParser with `TearDown` overrided
		prompt.OptionParser(newTutorInputParser()),
	)
	pa.prompt = p
	return pa
}

func (a *PromptApp) Run(start framework.State) {
	a.currentState = start
	a.prompt.Run()
}

// promptExecute actual execution logic entry.
func (a *PromptApp) promptExecute(in string) {
	in = strings.TrimSpace(in)

	nextState, err := a.currentState.Process(in)

	a.historyHelper.AddLog(in)
	a.suggestHistory = false

	if errors.Is(err, common.ExitErr) {
		fmt.Println("Bye! Keep practicing.")
		a.exited = true
		return
	}
	if err != nil {
		if a.logger != nil {
			a.logger.Printf("[DEBUG] process %q failed: %s", in, err.Error())
		}
		fmt.Println(err.Error())
		return
	}

	nextState.SetupCommands()
	a.currentState = nextState

	if a.currentState.IsEnding() {
		fmt.Println("Bye! Keep practicing.")
		a.exited = true
	}
}

// completeInput auto-complete logic entry.
func (a *PromptApp) completeInput(d prompt.Document) []prompt.Suggest {
	input := d.CurrentLineBeforeCursor()
	if a.suggestHistory {
		return a.historySuggestions(input)
	}
	if input == "" {
		return nil
	}
	r := a.currentState.Suggestions(input)
	s := make([]prompt.Suggest, 0, len(r))
	for usage, short := range r {
		s = append(s, prompt.Suggest{
			Text:        usage,
			Description: short,
		})
	}
	sort.Slice(s, func(i, j int) bool {
		return s[i].Text < s[j].Text
	})
	return s
}

// historySuggestions returns suggestion from command history.
func (a *PromptApp) historySuggestions(input string) []prompt.Suggest {
	items := a.historyHelper.List(input)
	sort.Slice(items, func(i, j int) bool {
		return items[i].Ts > items[j].Ts
	})

	lastIdx := strings.LastIndex(input, " ") + 1
	return lo.Map(items, func(item history.Item, _ int) prompt.Suggest {
		t := time.Unix(item.Ts, 0)
		return prompt.Suggest{
			Text:        item.Cmd[lastIdx:],
			Description: t.Format("2006-01-02 15:04:05"),
		}
	})
}

// livePrefix implements dynamic change prefix.
func (a *PromptApp) livePrefix() (string, bool) {
	if a.exited {
		return "", false
	}
	return fmt.Sprintf("%s > ", a.currentState.Label()), true
}
