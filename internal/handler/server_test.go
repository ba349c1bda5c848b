package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/kart-checkout/internal/domain/user"
	"github.com/xenking/kart-checkout/internal/handler"
)

type response struct {
	Code int
	Body map[string]any
	List []map[string]any
}

// serve sends a request through the generated server.
func (f *fixture) serve(method, path string, as *user.User, body string) response {
	f.t.Helper()

	srv, err := handler.NewServer(f.h, f.sec)
	require.NoError(f.t, err)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if as != nil {
		req.Header.Set("Authorization", "Bearer "+f.token(*as))
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	res := response{Code: w.Code}
	if raw := w.Body.Bytes(); len(raw) > 0 {
		if raw[0] == '[' {
			require.NoError(f.t, json.Unmarshal(raw, &res.List))
		} else {
			require.NoError(f.t, json.Unmarshal(raw, &res.Body))
		}
	}
	return res
}

func TestServer_Authentication(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "no header", header: "", want: "not authorized, no token"},
		{name: "wrong scheme", header: "Basic abc", want: "not authorized, no token"},
		{name: "garbage", header: "Bearer not-a-jwt", want: "not authorized, token failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := handler.NewServer(f.h, f.sec)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			srv.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			var body map[string]any
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, "UNAUTHORIZED", body["reason"])
			assert.Equal(t, tt.want, body["message"])
			assert.EqualValues(t, http.StatusUnauthorized, body["code"])
		})
	}
}

func TestServer_AdminOperationsRejectCustomers(t *testing.T) {
	f := newFixture(t)
	routes := []struct{ method, path, body string }{
		{http.MethodGet, "/api/coupons", ""},
		{http.MethodPost, "/api/coupons", "{}"},
		{http.MethodPut, "/api/coupons/c-1", "{}"},
		{http.MethodDelete, "/api/coupons/c-1", ""},
		{http.MethodGet, "/api/orders/all/admin", ""},
		{http.MethodPut, "/api/orders/o-1/status", "{}"},
	}
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			res := f.serve(rt.method, rt.path, &customer, rt.body)
			assert.Equal(t, http.StatusForbidden, res.Code)
			assert.Equal(t, "not authorized as an admin", res.Body["message"])
		})
	}
}

func TestServer_InvalidBodies(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		method string
		path   string
		as     user.User
		body   string
	}{
		{"malformed", http.MethodPost, "/api/coupons/validate", customer, `{"code":`},
		{"missing order total", http.MethodPost, "/api/coupons/validate", customer, `{"code":"SAVE10","cartValue":1000}`},
		{"money as string", http.MethodPost, "/api/coupons/validate", customer, `{"code":"SAVE10","cartValue":"1000","orderTotal":1100}`},
		{"missing product id", http.MethodPost, "/api/cart", customer, `{"quantity":1}`},
		{"unknown discount type", http.MethodPost, "/api/coupons", admin, `{"code":"BAD","discountType":"bogus","discountValue":5}`},
		{"unknown status", http.MethodPut, "/api/orders/o-1/status", admin, `{"status":"lost"}`},
		{"missing address", http.MethodPost, "/api/orders", customer, `{"orderItems":[{"product":"kbd","quantity":1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := f.serve(tt.method, tt.path, &tt.as, tt.body)
			assert.Equal(t, http.StatusBadRequest, res.Code)
			assert.Equal(t, "INVALID_BODY", res.Body["reason"])
			assert.EqualValues(t, http.StatusBadRequest, res.Body["code"])
		})
	}
}

func TestServer_PlaceOrder(t *testing.T) {
	f := newFixture(t)

	res := f.serve(http.MethodPost, "/api/orders", &customer, `{
		"orderItems": [{"productId": "mouse", "quantity": 2}],
		"shippingAddress": {"fullName": "Asha Rao", "address": "12 MG Road", "city": "Bengaluru", "postalCode": "560001", "country": "IN"}
	}`)
	require.Equal(t, http.StatusCreated, res.Code, res.Body)
	assert.Equal(t, "pending", res.Body["status"])
	assert.Equal(t, 499.0, res.Body["cartValue"])
	assert.Equal(t, 100.0, res.Body["shippingPrice"])
	assert.Equal(t, 599.0, res.Body["totalPrice"])
	assert.Contains(t, res.Body, "couponCode")
	assert.Nil(t, res.Body["couponCode"])

	mine := f.serve(http.MethodGet, "/api/orders", &customer, "")
	require.Equal(t, http.StatusOK, mine.Code)
	assert.Len(t, mine.List, 1)
}

func TestServer_PublicCatalog(t *testing.T) {
	f := newFixture(t)

	res := f.serve(http.MethodGet, "/api/products", nil, "")
	require.Equal(t, http.StatusOK, res.Code)
	require.Len(t, res.List, 3)
	assert.Equal(t, 500.0, res.List[0]["price"])
}

func TestServer_UnknownRoute(t *testing.T) {
	f := newFixture(t)

	res := f.serve(http.MethodGet, "/api/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "NOT_FOUND", res.Body["reason"])

	res = f.serve(http.MethodPatch, "/api/products", nil, "")
	assert.Equal(t, http.StatusMethodNotAllowed, res.Code)
	assert.Equal(t, "METHOD_NOT_ALLOWED", res.Body["reason"])
}
