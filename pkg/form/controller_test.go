package form_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrform/pkg/form"
	"github.com/dmitrymomot/qrform/pkg/qrcode"
)

// fakeEncoder records calls and returns "img:<text>" unless err is set.
type fakeEncoder struct {
	calls atomic.Int32
	texts []string
	err   error
}

func (f *fakeEncoder) Encode(_ context.Context, text string) (string, error) {
	f.calls.Add(1)
	f.texts = append(f.texts, text)
	if f.err != nil {
		return "", f.err
	}
	return "img:" + text, nil
}

// recorder keeps every rendered state.
type recorder struct {
	states []form.State
	err    error
}

func (r *recorder) Render(_ context.Context, s form.State) error {
	r.states = append(r.states, s)
	return r.err
}

func assertSettledInvariant(t *testing.T, s form.State) {
	t.Helper()
	assert.False(t, s.Loading, "loading must be false after settle")
	assert.True(t, s.Phase.Settled())
	assert.False(t, s.Result != nil && s.Err != nil, "result and error must not both be present")
}

func TestController_Generate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("success stores trimmed text and image", func(t *testing.T) {
		t.Parallel()
		enc := &fakeEncoder{}
		ctrl := form.NewController(enc)

		s, err := ctrl.Generate(ctx, "  hello world \n")
		require.NoError(t, err)

		assert.Equal(t, form.PhaseSuccess, s.Phase)
		assert.Equal(t, &form.Result{Text: "hello world", Image: "img:hello world"}, s.Result)
		assert.Nil(t, s.Err)
		assert.Equal(t, []string{"hello world"}, enc.texts)
		assertSettledInvariant(t, s)
	})

	t.Run("whitespace only input fails validation without encoding", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{"", " ", "   ", "\t\n", "  "} {
			enc := &fakeEncoder{}
			ctrl := form.NewController(enc)

			s, err := ctrl.Generate(ctx, in)
			require.NoError(t, err)

			assert.Equal(t, form.PhaseFailed, s.Phase)
			assert.Nil(t, s.Result)
			assert.Equal(t, "Enter text to generate the QR", s.ErrorMessage())
			assert.True(t, form.IsValidationError(s.Err))
			assert.Zero(t, enc.calls.Load(), "encoder must not be called for %q", in)
			assertSettledInvariant(t, s)
		}
	})

	t.Run("encoder failure clears previous result", func(t *testing.T) {
		t.Parallel()
		enc := &fakeEncoder{}
		ctrl := form.NewController(enc)

		_, err := ctrl.Generate(ctx, "first")
		require.NoError(t, err)

		enc.err = errors.New("network down")
		s, err := ctrl.Generate(ctx, "second")
		require.NoError(t, err)

		assert.Equal(t, form.PhaseFailed, s.Phase)
		assert.Nil(t, s.Result)
		assert.Equal(t, "network down", s.ErrorMessage())
		assert.True(t, form.IsEncodeError(s.Err))
		assert.ErrorIs(t, s.Err, enc.err)
		assertSettledInvariant(t, s)
	})

	t.Run("encoder error without message becomes unknown error", func(t *testing.T) {
		t.Parallel()
		enc := &fakeEncoder{err: errors.New("")}
		ctrl := form.NewController(enc)

		s, err := ctrl.Generate(ctx, "text")
		require.NoError(t, err)

		assert.Equal(t, "Unknown error", s.ErrorMessage())
	})

	t.Run("retry after failure succeeds", func(t *testing.T) {
		t.Parallel()
		enc := &fakeEncoder{}
		ctrl := form.NewController(enc)

		s, err := ctrl.Generate(ctx, " ")
		require.NoError(t, err)
		require.Equal(t, form.PhaseFailed, s.Phase)

		s, err = ctrl.Generate(ctx, "again")
		require.NoError(t, err)

		assert.Equal(t, form.PhaseSuccess, s.Phase)
		assert.Nil(t, s.Err)
		assert.Equal(t, "again", s.Result.Text)
	})

	t.Run("is idempotent with a deterministic encoder", func(t *testing.T) {
		t.Parallel()
		ctrl := form.NewController(&fakeEncoder{})

		first, err := ctrl.Generate(ctx, "same")
		require.NoError(t, err)
		second, err := ctrl.Generate(ctx, "same")
		require.NoError(t, err)

		assert.Equal(t, first.Result, second.Result)
	})

	t.Run("does not change raw input", func(t *testing.T) {
		t.Parallel()
		ctrl := form.NewController(&fakeEncoder{})
		ctrl.UpdateText("  typed  ")

		s, err := ctrl.Generate(ctx, "other")
		require.NoError(t, err)

		assert.Equal(t, "  typed  ", s.Input)
	})
}

func TestController_Loading(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("loading is true strictly during the encoder call", func(t *testing.T) {
		t.Parallel()
		var ctrl *form.Controller
		var during form.State
		enc := form.EncoderFunc(func(_ context.Context, text string) (string, error) {
			during = ctrl.State()
			return "img", nil
		})
		ctrl = form.NewController(enc)

		assert.False(t, ctrl.State().Loading)
		s, err := ctrl.Generate(ctx, "x")
		require.NoError(t, err)

		assert.True(t, during.Loading)
		assert.Equal(t, form.PhaseLoading, during.Phase)
		assert.False(t, s.Loading)
		assert.False(t, ctrl.State().Loading)
	})

	t.Run("loading is cleared on every failure path", func(t *testing.T) {
		t.Parallel()
		ctrl := form.NewController(&fakeEncoder{err: errors.New("fail")})

		s, err := ctrl.Generate(ctx, "x")
		require.NoError(t, err)
		assert.False(t, s.Loading)

		s, err = ctrl.Generate(ctx, "")
		require.NoError(t, err)
		assert.False(t, s.Loading)
	})

	t.Run("overlapping generate is rejected", func(t *testing.T) {
		t.Parallel()
		var ctrl *form.Controller
		var nestedErr error
		var nestedState form.State
		enc := form.EncoderFunc(func(ctx context.Context, text string) (string, error) {
			nestedState, nestedErr = ctrl.Generate(ctx, "nested")
			return "img", nil
		})
		ctrl = form.NewController(enc)

		s, err := ctrl.Generate(ctx, "outer")
		require.NoError(t, err)

		require.ErrorIs(t, nestedErr, form.ErrGenerationInProgress)
		assert.Equal(t, form.PhaseLoading, nestedState.Phase)
		assert.Equal(t, "outer", s.Result.Text)
	})

	t.Run("can submit follows loading and input", func(t *testing.T) {
		t.Parallel()
		var ctrl *form.Controller
		var during bool
		enc := form.EncoderFunc(func(context.Context, string) (string, error) {
			during = ctrl.CanSubmit()
			return "img", nil
		})
		ctrl = form.NewController(enc)

		assert.False(t, ctrl.CanSubmit(), "empty input")
		ctrl.UpdateText("   ")
		assert.False(t, ctrl.CanSubmit(), "blank input")
		ctrl.UpdateText("text")
		assert.True(t, ctrl.CanSubmit())

		_, err := ctrl.Generate(ctx, "text")
		require.NoError(t, err)
		assert.False(t, during, "disabled while loading")
		assert.True(t, ctrl.CanSubmit())
	})
}

func TestController_Renderer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("renders loading then settled state", func(t *testing.T) {
		t.Parallel()
		rec := &recorder{}
		ctrl := form.NewController(&fakeEncoder{}, form.WithRenderer(rec))

		_, err := ctrl.Generate(ctx, "x")
		require.NoError(t, err)

		require.Len(t, rec.states, 2)
		assert.Equal(t, form.PhaseLoading, rec.states[0].Phase)
		assert.True(t, rec.states[0].Loading)
		assert.Equal(t, form.PhaseSuccess, rec.states[1].Phase)
	})

	t.Run("render failure is reported without changing state", func(t *testing.T) {
		t.Parallel()
		rec := &recorder{err: errors.New("client gone")}
		ctrl := form.NewController(&fakeEncoder{}, form.WithRenderer(rec))

		s, err := ctrl.Generate(ctx, "x")
		require.ErrorIs(t, err, form.ErrRenderFailed)

		assert.Equal(t, form.PhaseSuccess, s.Phase)
		assert.Equal(t, form.PhaseSuccess, ctrl.State().Phase)
	})

	t.Run("renderer func adapter", func(t *testing.T) {
		t.Parallel()
		var phases []form.Phase
		r := form.RendererFunc(func(_ context.Context, s form.State) error {
			phases = append(phases, s.Phase)
			return nil
		})
		ctrl := form.NewController(&fakeEncoder{}, form.WithRenderer(r))

		_, err := ctrl.Generate(ctx, "")
		require.NoError(t, err)

		assert.Equal(t, []form.Phase{form.PhaseLoading, form.PhaseFailed}, phases)
	})
}

func TestController_Init(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("generates default text once", func(t *testing.T) {
		t.Parallel()
		enc := &fakeEncoder{}
		ctrl := form.NewController(enc)

		s, err := ctrl.Init(ctx)
		require.NoError(t, err)

		assert.Equal(t, "Hello from QR frontend", s.Result.Text)
		assert.Equal(t, "Hello from QR frontend", s.Input)

		_, err = ctrl.Init(ctx)
		require.NoError(t, err)
		assert.Equal(t, int32(1), enc.calls.Load())
	})

	t.Run("custom default text", func(t *testing.T) {
		t.Parallel()
		ctrl := form.NewController(&fakeEncoder{}, form.WithDefaultText("Olá"))

		s, err := ctrl.Init(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Olá", s.Result.Text)
	})

	t.Run("blank default text is ignored", func(t *testing.T) {
		t.Parallel()
		ctrl := form.NewController(&fakeEncoder{}, form.WithDefaultText("  "))

		s, err := ctrl.Init(ctx)
		require.NoError(t, err)
		assert.Equal(t, form.DefaultText, s.Result.Text)
	})
}

func TestController_Localizer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	messages := map[string]string{
		form.MessageEmptyText: "Digite um texto para gerar o QR",
		form.MessageUnknown:   "Erro desconhecido",
	}
	localize := form.Localizer(func(key, fallback string) string {
		if msg, ok := messages[key]; ok {
			return msg
		}
		return fallback
	})

	t.Run("validation message", func(t *testing.T) {
		t.Parallel()
		ctrl := form.NewController(&fakeEncoder{}, form.WithLocalizer(localize))

		s, err := ctrl.Generate(ctx, " ")
		require.NoError(t, err)
		assert.Equal(t, "Digite um texto para gerar o QR", s.ErrorMessage())
	})

	t.Run("unknown encoder error", func(t *testing.T) {
		t.Parallel()
		ctrl := form.NewController(&fakeEncoder{err: errors.New(" ")}, form.WithLocalizer(localize))

		s, err := ctrl.Generate(ctx, "x")
		require.NoError(t, err)
		assert.Equal(t, "Erro desconhecido", s.ErrorMessage())
	})
}

func TestScenarios(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("initial load generates default text", func(t *testing.T) {
		t.Parallel()
		ctrl := form.NewController(&fakeEncoder{})

		s, err := ctrl.Init(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Hello from QR frontend", s.Result.Text)
	})

	t.Run("only spaces", func(t *testing.T) {
		t.Parallel()
		ctrl := form.NewController(&fakeEncoder{})
		ctrl.UpdateText("   ")

		s, err := ctrl.Generate(ctx, ctrl.State().Input)
		require.NoError(t, err)
		assert.Equal(t, "Enter text to generate the QR", s.ErrorMessage())
		assert.Nil(t, s.Result)
	})

	t.Run("url", func(t *testing.T) {
		t.Parallel()
		ctrl := form.NewController(form.EncoderFunc(func(context.Context, string) (string, error) {
			return "X", nil
		}))
		ctrl.UpdateText("https://example.com")

		s, err := ctrl.Generate(ctx, ctrl.State().Input)
		require.NoError(t, err)
		assert.Equal(t, &form.Result{Text: "https://example.com", Image: "X"}, s.Result)
	})

	t.Run("encoder throws network down", func(t *testing.T) {
		t.Parallel()
		ctrl := form.NewController(&fakeEncoder{err: errors.New("network down")})

		s, err := ctrl.Generate(ctx, "valid")
		require.NoError(t, err)
		assert.Equal(t, "network down", s.ErrorMessage())
		assert.Nil(t, s.Result)
	})
}

func TestControllerWithQRCodeEncoder(t *testing.T) {
	t.Parallel()

	t.Run("oversized text fails with a single line message", func(t *testing.T) {
		t.Parallel()
		ctrl := form.NewController(qrcode.NewEncoder())

		s, err := ctrl.Generate(context.Background(), strings.Repeat("x", 5000))
		require.NoError(t, err)
		assert.Equal(t, form.PhaseFailed, s.Phase)
		assert.True(t, form.IsEncodeError(s.Err))
		assert.ErrorIs(t, s.Err, qrcode.ErrFailedToGenerateQRCode)
		assert.NotContains(t, s.ErrorMessage(), "\n")
		assert.Nil(t, s.Result)
	})
}
