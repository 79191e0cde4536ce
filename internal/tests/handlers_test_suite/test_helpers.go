package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	api "github.com/RashmikaAkash/ecommerce-product-recommender/internal/http"
	handler "github.com/RashmikaAkash/ecommerce-product-recommender/internal/http/handlers"
	rl "github.com/RashmikaAkash/ecommerce-product-recommender/internal/http/rate_limiter"
	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/repo"
	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/uploads"
)

var productRepo *repo.InMemoryProductRepository

func init() {
	// The suite hammers the router from a single address; keep the
	// limiter out of the way.
	rl.Configure(1_000_000, 1_000_000)

	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	dir, err := os.MkdirTemp("", "uploads")
	if err != nil {
		panic(fmt.Sprintf("error creating uploads dir: %v", err))
	}
	store, err := uploads.NewStore(dir)
	if err != nil {
		panic(fmt.Sprintf("error creating upload store: %v", err))
	}
	handler.SetUploadStore(store)
}

func clearAllProducts() {
	productRepo.Clear()
}

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			panic(fmt.Sprintf("error encoding payload: %v", err))
		}
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// doRaw sends the body verbatim, for payloads that must not survive
// JSON encoding.
func doRaw(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, payload map[string]any) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/products", payload)
}

// seedProduct creates a product and returns the decoded response.
func seedProduct(r http.Handler, payload map[string]any) (handler.ProductResponse, error) {
	w := createProduct(r, payload)
	if w.Code != http.StatusCreated {
		return handler.ProductResponse{}, fmt.Errorf("seed returned %d: %s", w.Code, w.Body.String())
	}
	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return handler.ProductResponse{}, err
	}
	return resp, nil
}

// multipartUpdate sends a PUT with form fields and an optional image
// file named image.png.
func multipartUpdate(r http.Handler, id string, fields map[string]string, image []byte) (*httptest.ResponseRecorder, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	if image != nil {
		fw, err := mw.CreateFormFile("image", "image.png")
		if err != nil {
			return nil, err
		}
		if _, err := fw.Write(image); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req := httptest.NewRequest(http.MethodPut, "/api/products/"+id, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, nil
}

func newRouter() http.Handler {
	return api.NewRouter()
}
