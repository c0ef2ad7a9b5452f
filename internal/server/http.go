package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/dchest/uniuri"
	"github.com/gin-gonic/gin"
	"github.com/opencontainers/go-digest"
	"github.com/polysect/polysect/pkg/polysect"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

// How many plots may be rendered concurrently
const maxConcurrentRenders = 4

type httpServer struct {
	log *logrus.Logger

	renderSem *semaphore.Weighted

	mu      sync.Mutex
	plots   map[string]digest.Digest // Plot id handed out in a response -> render cache key
	renders map[digest.Digest][]byte // Render cache key -> rendered png
}

func (h *httpServer) Init(port int, log *logrus.Logger) error {
	h.log = log
	h.renderSem = semaphore.NewWeighted(maxConcurrentRenders)

	h.plots = make(map[string]digest.Digest)
	h.renders = make(map[digest.Digest][]byte)

	router := h.setupRouter()

	return router.Run(fmt.Sprintf("localhost:%d", port))
}

func (h *httpServer) setupRouter() *gin.Engine {
	router := gin.Default()

	router.POST("/solve", h.postSolve)
	router.GET("/plot/:plotId", h.getPlot)

	return router
}

type solveRequest struct {
	Coefficients []float64 `json:"coefficients"`

	LowerBound float64 `json:"lowerBound"`
	UpperBound float64 `json:"upperBound"`

	Tolerance     float64 `json:"tolerance"`
	MaxIterations int     `json:"maxIterations"`
}

type iterationResponse struct {
	Index int `json:"index"`

	A float64 `json:"a"`
	B float64 `json:"b"`

	C  float64 `json:"c"`
	FC float64 `json:"fc"`

	Error float64 `json:"error"`
}

type solveResponse struct {
	Root       float64 `json:"root"`
	Iterations int     `json:"iterations"`
	Status     string  `json:"status"`

	Table []iterationResponse `json:"table"`

	PlotId string `json:"plotId"`
}

type bracketResponse struct {
	Error string `json:"error"`

	FA float64 `json:"fa"`
	FB float64 `json:"fb"`
}

func (h *httpServer) postSolve(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var table []iterationResponse
	job := polysect.Job{
		Coefficients: polysect.Polynomial(req.Coefficients),

		LowerBound: req.LowerBound,
		UpperBound: req.UpperBound,

		Tolerance:     req.Tolerance,
		MaxIterations: req.MaxIterations,

		Log: h.log,

		OnIteration: func(it polysect.Iteration) {
			table = append(table, iterationResponse{
				Index: it.Index,

				A: it.A,
				B: it.B,

				C:  it.C,
				FC: it.FC,

				Error: it.Error,
			})
		},
	}

	res, err := job.Run()
	if err != nil {
		bracketErr := &polysect.BracketError{}
		if errors.As(err, &bracketErr) {
			c.JSON(http.StatusUnprocessableEntity, bracketResponse{
				Error: bracketErr.Error(),

				FA: bracketErr.FA,
				FB: bracketErr.FB,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plotId, err := h.renderPlot(c, job, res.Root)
	if err != nil {
		h.log.Errorf("Failed to render plot - %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	status := "Max Iterations Reached"
	if res.Iterations < job.MaxIterations {
		status = "Success"
	}

	c.JSON(http.StatusOK, solveResponse{
		Root:       res.Root,
		Iterations: res.Iterations,
		Status:     status,

		Table: table,

		PlotId: plotId,
	})
}

func (h *httpServer) getPlot(c *gin.Context) {
	id := c.Param("plotId")

	h.mu.Lock()
	defer h.mu.Unlock()

	if key, found := h.plots[id]; found {
		c.Data(http.StatusOK, "image/png", h.renders[key])
	} else {
		c.AbortWithStatus(http.StatusNotFound)
	}
}

// renderPlot renders the plot of the solved job and returns an id under which
// it can be fetched. Renders are cached by a digest of the job's inputs, so
// repeated solves of the same job reuse the previous render.
func (h *httpServer) renderPlot(c *gin.Context, job polysect.Job, root float64) (string, error) {
	key := digest.FromString(fmt.Sprintf("%v|%g|%g|%g", job.Coefficients, job.LowerBound, job.UpperBound, root))

	h.mu.Lock()
	_, cached := h.renders[key]
	h.mu.Unlock()

	if !cached {
		if err := h.renderSem.Acquire(c.Request.Context(), 1); err != nil {
			return "", err
		}
		var buf bytes.Buffer
		err := polysect.WritePlot(&buf, job.Coefficients, job.LowerBound, job.UpperBound, &root)
		h.renderSem.Release(1)
		if err != nil {
			return "", err
		}

		h.mu.Lock()
		h.renders[key] = buf.Bytes()
		h.mu.Unlock()
	}

	plotId := uniuri.New()

	h.mu.Lock()
	h.plots[plotId] = key
	h.mu.Unlock()

	return plotId, nil
}
