package crossmint_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkout-gateway/internal/pkg/crossmint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenLocator(t *testing.T) {
	client := crossmint.Setup(&crossmint.Config{
		ChainID:   "solana",
		TokenMint: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
	})

	assert.Equal(t,
		"solana:EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v:EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		client.TokenLocator(),
	)
}

func TestCreateOrder_RequestShape(t *testing.T) {
	var gotPath, gotKey string
	var gotBody crossmint.OrderRequest

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"order":{"orderId":"ord_1","phase":"payment"},"clientSecret":"cs_1"}`))
	}))
	defer upstream.Close()

	client := crossmint.Setup(&crossmint.Config{
		ServerAPIKey: "sk_test",
		ChainID:      "solana",
		TokenMint:    "MintAddr",
	})
	client.SetBaseURL(upstream.URL)

	result, err := client.CreateOrder(context.Background(), &crossmint.OrderRequest{
		LineItems: []crossmint.LineItem{
			{
				TokenLocator: client.TokenLocator(),
				ExecutionParameters: crossmint.ExecutionParameters{
					Mode:   crossmint.ExecutionModeExactIn,
					Amount: "25.00",
				},
			},
		},
		Payment:   crossmint.Payment{Method: crossmint.PaymentMethodCheckoutFlow, ReceiptEmail: "a@b.com"},
		Recipient: crossmint.Recipient{WalletAddress: "0xAbC"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/2022-06-09/orders", gotPath)
	assert.Equal(t, "sk_test", gotKey)
	require.Len(t, gotBody.LineItems, 1)
	assert.Equal(t, "exact-in", gotBody.LineItems[0].ExecutionParameters.Mode)
	assert.Equal(t, "25.00", gotBody.LineItems[0].ExecutionParameters.Amount)
	assert.Equal(t, "solana:MintAddr:MintAddr", gotBody.LineItems[0].TokenLocator)
	assert.Equal(t, "checkoutcom-flow", gotBody.Payment.Method)
	assert.Equal(t, "a@b.com", gotBody.Payment.ReceiptEmail)
	assert.Equal(t, "0xAbC", gotBody.Recipient.WalletAddress)

	assert.Equal(t, http.StatusOK, result.StatusCode)

	var resp crossmint.CreateOrderResponse
	require.NoError(t, json.Unmarshal(result.Body, &resp))
	assert.Equal(t, "ord_1", resp.Order.OrderID)
	assert.Equal(t, "cs_1", resp.ClientSecret)
}

func TestCreateOrder_TransportError(t *testing.T) {
	client := crossmint.Setup(&crossmint.Config{ServerAPIKey: "sk_test"})
	client.SetBaseURL("http://127.0.0.1:1")

	_, err := client.CreateOrder(context.Background(), &crossmint.OrderRequest{})
	assert.Error(t, err)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "bad wallet", crossmint.ErrorMessage([]byte(`{"error":"bad wallet"}`)))
	assert.Equal(t, "invalid line item", crossmint.ErrorMessage([]byte(`{"message":"invalid line item"}`)))
	assert.Equal(t, "Failed to create order", crossmint.ErrorMessage([]byte(`{}`)))
	assert.Equal(t, "Failed to create order", crossmint.ErrorMessage([]byte(`not json`)))
}
