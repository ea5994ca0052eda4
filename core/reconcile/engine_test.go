package reconcile_test

import (
	"context"
	"errors"
	"testing"

	"catalog-sync/core/catalog"
	"catalog-sync/core/catalog/mocks"
	"catalog-sync/core/mapping"
	"catalog-sync/core/reconcile"
	"catalog-sync/core/registry"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	engine *reconcile.Engine
	src    *mocks.Client
	dst    *mocks.Client
}

func setup(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{src: new(mocks.Client), dst: new(mocks.Client)}
	clients := map[string]catalog.Client{"wilson_us": f.src, "signal_ca": f.dst}

	reg := registry.New([]registry.Profile{
		{Key: "wilson_us", StoreHash: "srchash", AccessToken: "t", ClientID: "c"},
		{Key: "signal_ca", StoreHash: "dsthash", AccessToken: "t", ClientID: "c"},
		{Key: "broken", StoreHash: "h"},
	}, func(p registry.Profile) catalog.Client { return clients[p.Key] })

	f.engine = reconcile.NewEngine(reg, nil, nil)
	t.Cleanup(func() {
		f.src.AssertExpectations(t)
		f.dst.AssertExpectations(t)
	})
	return f
}

func sourceProduct() *catalog.Product {
	return &catalog.Product{
		ID:        5,
		SKU:       "X1",
		Name:      "Booster",
		Price:     decimal.RequireFromString("19.99"),
		BrandID:   3,
		CustomURL: &catalog.CustomURL{URL: "/booster/"},
	}
}

func importPayload() catalog.Payload {
	return catalog.Payload{
		"name":         "Booster",
		"description":  "",
		"sku":          "X1",
		"type":         "physical",
		"weight":       0.0,
		"price":        "19.99",
		"is_visible":   true,
		"availability": "available",
		"brand_name":   "weBoost",
	}
}

func request() reconcile.Request {
	return reconcile.Request{Source: "wilson_us", Destination: "signal_ca", SKU: "X1"}
}

func TestReconcile_SourceAbsentNeverTouchesDestination(t *testing.T) {
	f := setup(t)
	f.src.On("FindBySKU", mock.Anything, "X1").Return(nil, nil)

	res, err := f.engine.Reconcile(context.Background(), request())

	assert.Nil(t, res)
	var notFound *reconcile.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "wilson_us", notFound.Store)
	f.dst.AssertNotCalled(t, "FindBySKU", mock.Anything, mock.Anything)
}

func TestReconcile_CreatesOnceWhenDestinationAbsent(t *testing.T) {
	f := setup(t)
	f.src.On("FindBySKU", mock.Anything, "X1").Return(sourceProduct(), nil)
	f.src.On("BrandName", mock.Anything, 3).Return("weBoost")
	f.dst.On("FindBySKU", mock.Anything, "X1").Return(nil, nil)
	f.dst.On("Create", mock.Anything, importPayload()).Return(&catalog.Product{ID: 900}, nil).Once()

	res, err := f.engine.Reconcile(context.Background(), request())

	require.NoError(t, err)
	assert.Equal(t, reconcile.ActionCreated, res.Action)
	assert.True(t, res.Success)
	assert.Equal(t, 900, res.ProductID)
	f.dst.AssertNumberOfCalls(t, "Create", 1)
	f.dst.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcile_SkipsExistingWithoutUpdate(t *testing.T) {
	f := setup(t)
	f.src.On("FindBySKU", mock.Anything, "X1").Return(sourceProduct(), nil)
	f.dst.On("FindBySKU", mock.Anything, "X1").Return(&catalog.Product{ID: 77, SKU: "X1"}, nil)

	res, err := f.engine.Reconcile(context.Background(), request())

	require.NoError(t, err)
	assert.Equal(t, reconcile.ActionSkipped, res.Action)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "already exists")
	f.dst.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.dst.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcile_UpdateIfExistsSendsFullPayload(t *testing.T) {
	f := setup(t)
	f.src.On("FindBySKU", mock.Anything, "X1").Return(sourceProduct(), nil)
	f.src.On("BrandName", mock.Anything, 3).Return("weBoost")
	f.dst.On("FindBySKU", mock.Anything, "X1").Return(&catalog.Product{ID: 77}, nil)
	f.dst.On("Update", mock.Anything, 77, importPayload()).Return(&catalog.Product{ID: 77}, nil)

	req := request()
	req.UpdateIfExists = true
	res, err := f.engine.Reconcile(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, reconcile.ActionUpdated, res.Action)
	assert.True(t, res.Success)
}

func TestReconcile_SelectionWinsOverFlag(t *testing.T) {
	f := setup(t)
	f.src.On("FindBySKU", mock.Anything, "X1").Return(sourceProduct(), nil)
	f.dst.On("FindBySKU", mock.Anything, "X1").Return(&catalog.Product{ID: 77}, nil)
	f.dst.On("Update", mock.Anything, 77, catalog.Payload{"price": "25.00", "brand_name": "Acme"}).
		Return(&catalog.Product{ID: 77}, nil)

	req := request()
	req.UpdateIfExists = true
	req.Selection = mapping.NewSelection("price", "brand")
	req.Values = map[string]any{"price": "25.00", "brand": "Acme", "name": "ignored"}

	res, err := f.engine.Reconcile(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, reconcile.ActionUpdated, res.Action)
	f.src.AssertNotCalled(t, "BrandName", mock.Anything, mock.Anything)
}

func TestReconcile_DestinationSKU(t *testing.T) {
	f := setup(t)
	f.src.On("FindBySKU", mock.Anything, "X1").Return(sourceProduct(), nil)
	f.dst.On("FindBySKU", mock.Anything, "X1-CA").Return(&catalog.Product{ID: 8}, nil)

	req := request()
	req.DestinationSKU = "X1-CA"
	res, err := f.engine.Reconcile(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, reconcile.ActionSkipped, res.Action)
	assert.Equal(t, 8, res.ProductID)
}

func TestReconcile_Errors(t *testing.T) {
	t.Run("MissingSKU", func(t *testing.T) {
		f := setup(t)
		_, err := f.engine.Reconcile(context.Background(), reconcile.Request{Source: "wilson_us", Destination: "signal_ca"})
		assert.ErrorIs(t, err, reconcile.ErrMissingSKU)
	})

	t.Run("UnknownStore", func(t *testing.T) {
		f := setup(t)
		req := request()
		req.Destination = "nowhere"
		_, err := f.engine.Reconcile(context.Background(), req)

		var cfgErr *registry.ConfigurationError
		assert.True(t, errors.As(err, &cfgErr))
	})

	t.Run("IncompleteStore", func(t *testing.T) {
		f := setup(t)
		req := request()
		req.Source = "broken"
		_, err := f.engine.Reconcile(context.Background(), req)

		var cfgErr *registry.ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		assert.NotEmpty(t, cfgErr.Missing)
	})

	t.Run("CreateRejected", func(t *testing.T) {
		f := setup(t)
		f.src.On("FindBySKU", mock.Anything, "X1").Return(sourceProduct(), nil)
		f.src.On("BrandName", mock.Anything, 3).Return("")
		f.dst.On("FindBySKU", mock.Anything, "X1").Return(nil, nil)
		f.dst.On("Create", mock.Anything, mock.Anything).Return(nil, &catalog.RemoteError{StatusCode: 422})

		_, err := f.engine.Reconcile(context.Background(), request())

		var remote *catalog.RemoteError
		require.True(t, errors.As(err, &remote))
		assert.Equal(t, 422, remote.StatusCode)
	})
}

func TestReconcileBatch_IsolatesFailures(t *testing.T) {
	f := setup(t)
	for _, sku := range []string{"A", "C"} {
		f.src.On("FindBySKU", mock.Anything, sku).Return(&catalog.Product{SKU: sku}, nil)
		f.dst.On("FindBySKU", mock.Anything, sku).Return(nil, nil)
	}
	f.src.On("FindBySKU", mock.Anything, "B").Return(nil, &catalog.RemoteError{Store: "wilson_us", StatusCode: 500})
	f.src.On("BrandName", mock.Anything, 0).Return("")
	f.dst.On("Create", mock.Anything, mock.Anything).Return(&catalog.Product{ID: 1}, nil).Twice()

	results := f.engine.ReconcileBatch(context.Background(), "wilson_us", "signal_ca", []string{"A", "B", "C"}, false)

	require.Len(t, results, 3)
	assert.Equal(t, "A", results[0].SKU)
	assert.True(t, results[0].Success)
	assert.Equal(t, "created", results[0].Action)
	assert.Equal(t, "B", results[1].SKU)
	assert.False(t, results[1].Success)
	assert.Contains(t, results[1].Error, "500")
	assert.Equal(t, "C", results[2].SKU)
	assert.True(t, results[2].Success)
}

func TestApplyFieldSync(t *testing.T) {
	t.Run("Updates", func(t *testing.T) {
		f := setup(t)
		f.dst.On("FindBySKU", mock.Anything, "X1").Return(&catalog.Product{ID: 77}, nil)
		f.dst.On("Update", mock.Anything, 77, catalog.Payload{"weight": 2.5, "is_visible": false}).
			Return(&catalog.Product{ID: 77}, nil)

		res, err := f.engine.ApplyFieldSync(context.Background(), "signal_ca", "X1",
			mapping.NewSelection("weight", "visible"), map[string]any{"weight": "2.5", "visible": "off"})

		require.NoError(t, err)
		assert.Equal(t, reconcile.ActionUpdated, res.Action)
	})

	t.Run("DestinationAbsent", func(t *testing.T) {
		f := setup(t)
		f.dst.On("FindBySKU", mock.Anything, "X1").Return(nil, nil)

		_, err := f.engine.ApplyFieldSync(context.Background(), "signal_ca", "X1",
			mapping.NewSelection("name"), map[string]any{"name": "n"})

		var notFound *reconcile.NotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "signal_ca", notFound.Store)
	})

	t.Run("CoercionFailure", func(t *testing.T) {
		f := setup(t)

		_, err := f.engine.ApplyFieldSync(context.Background(), "signal_ca", "X1",
			mapping.NewSelection("depth"), map[string]any{"depth": "deep"})

		var coercion *mapping.FieldCoercionError
		require.True(t, errors.As(err, &coercion))
		assert.Equal(t, "depth", coercion.Field)
		f.dst.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("EmptyPayloadIsNoop", func(t *testing.T) {
		f := setup(t)
		f.dst.On("FindBySKU", mock.Anything, "X1").Return(&catalog.Product{ID: 77}, nil)

		res, err := f.engine.ApplyFieldSync(context.Background(), "signal_ca", "X1",
			mapping.NewSelection("name"), map[string]any{"name": ""})

		require.NoError(t, err)
		assert.Equal(t, reconcile.ActionNoop, res.Action)
		assert.True(t, res.Success)
		f.dst.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGet(t *testing.T) {
	f := setup(t)
	f.src.On("FindBySKU", mock.Anything, "X1").Return(sourceProduct(), nil)
	f.src.On("BrandName", mock.Anything, 3).Return("weBoost")
	f.src.On("FindBySKU", mock.Anything, "NONE").Return(nil, nil)

	rec, err := f.engine.Get(context.Background(), "wilson_us", "X1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "weBoost", rec.Brand)
	assert.Equal(t, "https://srchash.mybigcommerce.com/booster/", rec.URL)

	rec, err = f.engine.Get(context.Background(), "wilson_us", "NONE")
	assert.NoError(t, err)
	assert.Nil(t, rec)
}

func TestCompare(t *testing.T) {
	t.Run("DefaultsSecondSKU", func(t *testing.T) {
		f := setup(t)
		f.src.On("FindBySKU", mock.Anything, "X1").Return(sourceProduct(), nil)
		f.src.On("BrandName", mock.Anything, 3).Return("weBoost")
		f.dst.On("FindBySKU", mock.Anything, "X1").Return(nil, nil)

		cmp, err := f.engine.Compare(context.Background(), "wilson_us", "signal_ca", "X1", "")

		require.NoError(t, err)
		assert.Equal(t, "X1", cmp.SKUB)
		assert.Equal(t, "Wilson Amplifiers US", cmp.StoreAName)
		assert.Equal(t, "SignalBoosters CA", cmp.StoreBName)
		assert.NotNil(t, cmp.RecordA)
		assert.Nil(t, cmp.RecordB)
	})

	t.Run("SourceAbsent", func(t *testing.T) {
		f := setup(t)
		f.src.On("FindBySKU", mock.Anything, "X1").Return(nil, nil)

		_, err := f.engine.Compare(context.Background(), "wilson_us", "signal_ca", "X1", "X1-CA")

		var notFound *reconcile.NotFoundError
		assert.True(t, errors.As(err, &notFound))
	})
}

func TestStores(t *testing.T) {
	f := setup(t)
	stores := f.engine.Stores()
	assert.Equal(t, "Wilson Amplifiers US", stores["wilson_us"])
	assert.Len(t, stores, 3)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "boom", reconcile.Outcome("A", nil, errors.New("boom")).Error)

	out := reconcile.Outcome("A", &reconcile.Result{Action: reconcile.ActionSkipped, Message: "already exists"}, nil)
	assert.False(t, out.Success)
	assert.Equal(t, "skipped", out.Action)
	assert.Equal(t, "A", out.SKU)
}
