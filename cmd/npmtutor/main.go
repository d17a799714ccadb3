package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"

	"github.com/oss-tutor/npmtutor/bapps"
	"github.com/oss-tutor/npmtutor/common"
	"github.com/oss-tutor/npmtutor/configs"
	"github.com/oss-tutor/npmtutor/states"
)

var (
	oneLineCommand = flag.String("olc", "", "one line command execution mode")
	simple         = flag.Bool("simple", false, "use simple ui without suggestion and history")
	restServer     = flag.Bool("rest", false, "expose the equivalence engine over http")
	webPort        = flag.Int("port", 8002, "listening port for web server")
	printVersion   = flag.Bool("version", false, "print version")
	configPath     = flag.String("config", "", "config directory, default $HOME/.npmtutor")
)

func main() {
	flag.Parse()

	if *printVersion {
		fmt.Println("npmtutor version", common.Version.String())
		return
	}

	config, err := configs.NewConfig(*configPath)
	if err != nil {
		// run by default, just printing warning.
		fmt.Println("[WARN] load config file failed, running in default setting", err.Error())
	}

	var appFactory func(config *configs.Config) bapps.BApp

	switch {
	case *simple:
		appFactory = func(*configs.Config) bapps.BApp { return bapps.NewSimpleApp() }
	case len(*oneLineCommand) > 0:
		appFactory = func(*configs.Config) bapps.BApp { return bapps.NewOlcApp(*oneLineCommand) }
	case *restServer:
		appFactory = func(config *configs.Config) bapps.BApp {
			app, err := bapps.NewWebServerApp(*webPort, config)
			if err != nil {
				log.Fatal(err)
			}
			return app
		}
	default:
		defer handleExit()
		// open file and create if non-existent
		file, err := os.OpenFile("npmtutor_debug.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()

		logger := log.New(file, "[npmtutor]", log.LstdFlags)

		appFactory = func(config *configs.Config) bapps.BApp {
			return bapps.NewPromptApp(config, bapps.WithLogger(logger))
		}
	}

	start := states.Start(config)

	app := appFactory(config)
	app.Run(start)
}

// handleExit is the fix for go-prompt output hi-jack fix.
func handleExit() {
	rawModeOff := exec.Command("/bin/stty", "-raw", "echo")
	rawModeOff.Stdin = os.Stdin
	_ = rawModeOff.Run()
	rawModeOff.Wait()
}
