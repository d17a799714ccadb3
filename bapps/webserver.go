package bapps

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oss-tutor/npmtutor/catalog"
	"github.com/oss-tutor/npmtutor/common"
	"github.com/oss-tutor/npmtutor/configs"
	"github.com/oss-tutor/npmtutor/engine"
	"github.com/oss-tutor/npmtutor/framework"
)

// WebServerApp exposes the equivalence engine over HTTP. Every request is
// stateless, the catalog is shared read-only.
type WebServerApp struct {
	port    int
	config  *configs.Config
	catalog *catalog.Catalog
}

func NewWebServerApp(port int, config *configs.Config) (*WebServerApp, error) {
	cat, err := catalog.LoadDefault()
	if err != nil {
		return nil, err
	}
	return &WebServerApp{
		port:    port,
		config:  config,
		catalog: cat,
	}, nil
}

type parseRequest struct {
	Input string `json:"input" binding:"required"`
}

type parseResponse struct {
	Valid       bool     `json:"valid"`
	Command     string   `json:"command,omitempty"`
	Flags       []string `json:"flags,omitempty"`
	Positionals []string `json:"positionals,omitempty"`
	Error       string   `json:"error,omitempty"`
}

type checkRequest struct {
	Expected string `json:"expected" binding:"required"`
	Actual   string `json:"actual" binding:"required"`
}

func (app *WebServerApp) Run(framework.State) {
	r := gin.Default()

	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": common.Version.String()})
	})

	r.POST("/api/parse", func(c *gin.Context) {
		var req parseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, app.parse(req.Input))
	})

	r.POST("/api/check", func(c *gin.Context) {
		var req checkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		result := engine.Match(
			engine.ParseProgram(req.Expected, app.catalog, app.config.ProgramName),
			engine.ParseProgram(req.Actual, app.catalog, app.config.ProgramName),
		)
		c.JSON(http.StatusOK, result)
	})

	r.Run(fmt.Sprintf(":%d", app.port))
}

func (app *WebServerApp) parse(input string) parseResponse {
	parsed := engine.ParseProgram(input, app.catalog, app.config.ProgramName)
	if !parsed.Valid {
		return parseResponse{Error: parsed.ErrMessage}
	}
	return parseResponse{
		Valid:       true,
		Command:     parsed.CommandName(),
		Flags:       parsed.Flags,
		Positionals: parsed.Positionals,
	}
}
