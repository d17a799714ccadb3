package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/samber/lo"
)

const historyFileName = ".npmtutor_history"

// Item is one logged answer line.
type Item struct {
	Cmd string
	Ts  int64
}

// Helper keeps the append-only answer history for prompt recall.
type Helper struct {
	items []Item
	hFile *os.File
}

// NewHistoryHelper opens (creating if needed) the history log under the
// workspace path and loads previous entries.
func NewHistoryHelper(workspacePath string) *Helper {
	if err := os.MkdirAll(workspacePath, 0o755); err != nil {
		fmt.Println("[WARN] failed to create workspace path", err.Error())
	}
	filePath := path.Join(workspacePath, historyFileName)
	var items []Item
	readFile, err := os.Open(filePath)
	if err == nil {
		scanner := bufio.NewScanner(readFile)
		scanner.Split(bufio.ScanLines)
		for scanner.Scan() {
			item := Item{}
			if err := json.Unmarshal(scanner.Bytes(), &item); err == nil {
				items = append(items, item)
			}
		}
		readFile.Close()
	}

	hFile, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Println("[WARN] failed to open history file", err.Error())
	}

	return &Helper{
		hFile: hFile,
		items: items,
	}
}

// AddLog appends an answer line.
func (h *Helper) AddLog(cmd string) {
	// skip empty line
	if len(strings.TrimSpace(cmd)) == 0 {
		return
	}
	item := Item{
		Ts:  time.Now().Unix(),
		Cmd: cmd,
	}
	if h.hFile != nil {
		bs, _ := json.Marshal(item)
		h.hFile.Write(bs)
		h.hFile.WriteString("\n")
	}
	h.items = append(h.items, item)
}

// List returns all history items with the provided prefix.
func (h *Helper) List(input string) []Item {
	return lo.Filter(h.items, func(item Item, _ int) bool {
		return strings.HasPrefix(item.Cmd, input)
	})
}

// Close releases the underlying log file.
func (h *Helper) Close() {
	if h.hFile != nil {
		h.hFile.Close()
	}
}
