package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Arun225295196/SIT725/internal/calculator"
)

const (
	msgInvalidInput = "Invalid input"
	msgDivideByZero = "Cannot divide by zero"
	msgOutOfRange   = "Result out of range"
)

// Handler serves the calculator endpoints. It has no state.
type Handler struct{}

func New() *Handler {
	return &Handler{}
}

type result struct {
	Operation string  `json:"operation"`
	Num1      float64 `json:"num1"`
	Num2      float64 `json:"num2"`
	Result    float64 `json:"result"`
	Message   string  `json:"message"`
}

type calculateReq struct {
	Num1      *float64 `json:"num1"`
	Num2      *float64 `json:"num2"`
	Operation string   `json:"operation"`
}

// operate builds the GET handler for one operation. Operands come from
// num1/num2 or the shorter a/b.
func (h *Handler) operate(op calculator.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		a, errA := calculator.ParseNumber(operand(c, "num1", "a"))
		b, errB := calculator.ParseNumber(operand(c, "num2", "b"))
		if errA != nil || errB != nil {
			respondError(c, msgInvalidInput, gin.H{
				"error":   msgInvalidInput + ". Please provide valid numbers.",
				"example": "/" + string(op) + "?num1=10&num2=5",
			})
			return
		}

		r, err := op.Apply(a, b)
		switch {
		case errors.Is(err, calculator.ErrDivideByZero):
			respondError(c, msgDivideByZero, gin.H{"error": msgDivideByZero, "num1": a, "num2": b})
			return
		case errors.Is(err, calculator.ErrOutOfRange):
			respondError(c, msgOutOfRange, gin.H{"error": msgOutOfRange, "num1": a, "num2": b})
			return
		case err != nil:
			respondError(c, msgInvalidInput, gin.H{"error": msgInvalidInput})
			return
		}

		switch c.NegotiateFormat(gin.MIMEJSON, gin.MIMEPlain) {
		case gin.MIMEPlain:
			c.String(http.StatusOK, op.Sentence(a, b, r))
		default:
			c.JSON(http.StatusOK, result{
				Operation: op.Noun(),
				Num1:      a,
				Num2:      b,
				Result:    r,
				Message:   op.Equation(a, b, r),
			})
		}
	}
}

func (h *Handler) calculate(c *gin.Context) {
	var req calculateReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Num1 == nil || req.Num2 == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   msgInvalidInput + ". num1 and num2 must be numbers.",
			"example": `{"num1": 5, "num2": 3, "operation": "add"}`,
		})
		return
	}

	op, err := calculator.ParseOperation(req.Operation)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid operation. Supported operations: add, subtract, multiply, divide",
		})
		return
	}

	r, err := op.Apply(*req.Num1, *req.Num2)
	if err != nil {
		msg := msgDivideByZero
		if errors.Is(err, calculator.ErrOutOfRange) {
			msg = msgOutOfRange
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, result{
		Operation: req.Operation,
		Num1:      *req.Num1,
		Num2:      *req.Num2,
		Result:    r,
		Message:   op.Equation(*req.Num1, *req.Num2, r),
	})
}

// index lists the public endpoints.
func (h *Handler) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "SIT725 Calculator and Projects API",
		"endpoints": gin.H{
			"GET": gin.H{
				"/add?num1=5&num2=3":           "Add two numbers",
				"/subtract?num1=10&num2=4":     "Subtract two numbers",
				"/multiply?num1=6&num2=7":      "Multiply two numbers",
				"/divide?num1=15&num2=3":       "Divide two numbers",
				"/api/projects":                "List projects",
				"/api/projects/:id":            "Get a project",
				"/api/projects/stats":          "Project statistics",
				"/api/projects/category/:name": "Projects in a category",
				"/api/events":                  "Server-sent event stream",
				"/ws":                          "WebSocket event channel",
				"/health":                      "Service health",
			},
			"POST": gin.H{
				"/calculate":    `Perform calculations with JSON body {"num1": 5, "num2": 3, "operation": "add"}`,
				"/api/projects": "Create a project",
			},
			"PUT": gin.H{
				"/api/projects/:id": "Update a project",
			},
			"DELETE": gin.H{
				"/api/projects/:id": "Delete a project",
			},
		},
	})
}

func operand(c *gin.Context, name, alias string) string {
	if v, ok := c.GetQuery(name); ok {
		return v
	}
	return c.Query(alias)
}

// respondError answers 400 as text when the client prefers it, JSON otherwise.
func respondError(c *gin.Context, text string, body gin.H) {
	if c.NegotiateFormat(gin.MIMEJSON, gin.MIMEPlain) == gin.MIMEPlain {
		c.String(http.StatusBadRequest, text)
		return
	}
	c.JSON(http.StatusBadRequest, body)
}
