package states

import (
	"fmt"

	"github.com/oss-tutor/npmtutor/catalog"
	"github.com/oss-tutor/npmtutor/configs"
	"github.com/oss-tutor/npmtutor/framework"
	"github.com/oss-tutor/npmtutor/tasks"
)

// Start loads the catalog and lessons and returns the initial home state.
func Start(config *configs.Config) framework.State {
	cat, err := catalog.LoadDefault()
	if err != nil {
		fmt.Println("failed to load command catalog:", err.Error())
		return &framework.ExitState{}
	}
	lessons, err := tasks.Load(cat)
	if err != nil {
		fmt.Println("failed to load lessons:", err.Error())
		return &framework.ExitState{}
	}

	return NewHomeState(config, cat, lessons)
}
