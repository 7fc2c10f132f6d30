package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-orderdesk/internal/listing"
	"go-orderdesk/internal/model"
	"go-orderdesk/internal/policy"
	"go-orderdesk/internal/service"
)

// stubCustomerService records the query it received and enforces the
// admin guard the way the real service does
type stubCustomerService struct {
	lastQuery listing.Query
	customers []model.Customer
}

func (s *stubCustomerService) ListCustomers(q listing.Query) ([]model.Customer, listing.Pagination, error) {
	s.lastQuery = q
	return s.customers, q.Paginate(int64(len(s.customers))), nil
}

func (s *stubCustomerService) CreateCustomer(actor policy.Actor, req *service.CustomerRequest) (*model.Customer, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	customer := &model.Customer{Name: req.Name, Email: req.Email}
	customer.ID = uuid.New()
	return customer, nil
}

func (s *stubCustomerService) UpdateCustomer(actor policy.Actor, id uuid.UUID, req *service.CustomerRequest) (*model.Customer, error) {
	return nil, service.ErrCustomerNotFound
}

func (s *stubCustomerService) DeleteCustomer(actor policy.Actor, id uuid.UUID) error {
	return service.ErrCustomerNotFound
}

func (s *stubCustomerService) GetCustomer(id uuid.UUID) (*model.Customer, error) {
	return nil, service.ErrCustomerNotFound
}

func newTestApp(stub *stubCustomerService, actor *policy.Actor) *fiber.App {
	app := fiber.New()
	if actor != nil {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("actor", *actor)
			return c.Next()
		})
	}
	h := NewCustomerHandler(stub)
	app.Get("/customers", h.GetCustomers)
	app.Post("/customers", h.CreateCustomer)
	app.Delete("/customers/:id", h.DeleteCustomer)
	return app
}

func decodeBody(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestGetCustomersDefaults(t *testing.T) {
	stub := &stubCustomerService{}
	app := newTestApp(stub, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/customers", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	assert.Equal(t, 1, stub.lastQuery.Page)
	assert.Equal(t, 24, stub.lastQuery.Limit)
	assert.Equal(t, "", stub.lastQuery.Search)
	assert.False(t, stub.lastQuery.Filtered())

	body := decodeBody(t, resp.Body)
	assert.Equal(t, true, body["success"])
	pagination := body["pagination"].(map[string]interface{})
	assert.EqualValues(t, 0, pagination["total"])
	assert.EqualValues(t, 1, pagination["currentPage"])
	assert.EqualValues(t, 24, pagination["limit"])
}

func TestGetCustomersParsesParams(t *testing.T) {
	stub := &stubCustomerService{}
	app := newTestApp(stub, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/customers?q=jane&page=3&limit=5", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	assert.Equal(t, "jane", stub.lastQuery.Search)
	assert.Equal(t, 3, stub.lastQuery.Page)
	assert.Equal(t, 5, stub.lastQuery.Limit)
}

func TestGetCustomersRejectsUnknownWindow(t *testing.T) {
	stub := &stubCustomerService{}
	app := newTestApp(stub, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/customers?time=90_DAYS", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid time filter", body["message"])

	resp, err = app.Test(httptest.NewRequest("GET", "/customers?time=7_DAYS", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, listing.Window7Days, stub.lastQuery.Window)
}

func TestCreateCustomerForbiddenForNonAdmin(t *testing.T) {
	stub := &stubCustomerService{}
	actor := policy.Actor{ID: uuid.New(), Role: model.RoleSalesAgent}
	app := newTestApp(stub, &actor)

	req := httptest.NewRequest("POST", "/customers",
		strings.NewReader(`{"name":"Jane Doe","email":"jane@example.com"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["message"])
}

func TestCreateCustomerAsAdmin(t *testing.T) {
	stub := &stubCustomerService{}
	actor := policy.Actor{ID: uuid.New(), Role: model.RoleAdmin}
	app := newTestApp(stub, &actor)

	req := httptest.NewRequest("POST", "/customers",
		strings.NewReader(`{"name":"Jane Doe","email":"jane@example.com"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, true, body["success"])
	customer := body["customer"].(map[string]interface{})
	assert.Equal(t, "Jane Doe", customer["name"])
}

func TestDeleteCustomerNotFound(t *testing.T) {
	stub := &stubCustomerService{}
	actor := policy.Actor{ID: uuid.New(), Role: model.RoleAdmin}
	app := newTestApp(stub, &actor)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/customers/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/customers/not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
