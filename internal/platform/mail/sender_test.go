package mail

import (
	"strings"
	"testing"
)

func TestSender_URLs(t *testing.T) {
	t.Parallel()

	s := NewSender(Config{
		BaseURL:  "https://api.tienda.example",
		FrontURL: "https://tienda.example/",
	})

	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "verification link points at the API",
			got:  s.VerificationURL("tok123"),
			want: "https://api.tienda.example/api/auth/verify/tok123",
		},
		{
			name: "reset link points at the frontend without double slash",
			got:  s.ResetURL("tok456"),
			want: "https://tienda.example/reset-password/tok456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, tt.got)
			}
		})
	}
}

func TestNewSender_DefaultTimeout(t *testing.T) {
	t.Parallel()

	s := NewSender(Config{})
	if s.cfg.Timeout <= 0 {
		t.Error("expected a default timeout to be applied")
	}
}

func TestRenderEmail(t *testing.T) {
	t.Parallel()

	t.Run("contains the texts and the link", func(t *testing.T) {
		body := renderEmail(
			"Verificación de correo electrónico",
			"Por favor, confirma tu correo electrónico haciendo clic en el botón de abajo.",
			"Verificar correo",
			"https://api.tienda.example/api/auth/verify/tok123",
			"Si no solicitaste esta verificación, puedes ignorar este mensaje.",
		)

		for _, want := range []string{
			"Verificación de correo electrónico",
			"Verificar correo",
			"href='https://api.tienda.example/api/auth/verify/tok123'",
			"puedes ignorar este mensaje",
		} {
			if !strings.Contains(body, want) {
				t.Errorf("expected body to contain %q", want)
			}
		}
	})

	t.Run("escapes html in the link", func(t *testing.T) {
		body := renderEmail("t", "i", "b", `https://x/?a='<script>`, "f")

		if strings.Contains(body, "<script>") {
			t.Error("link must be escaped")
		}
	})
}
