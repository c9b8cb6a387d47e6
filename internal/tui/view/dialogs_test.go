package view

import (
	"strings"
	"testing"

	"github.com/pizzarten/pizzarten/internal/dialog"
)

func TestConfirmRenderWithCancel(t *testing.T) {
	v := NewConfirmView()
	out := v.Render(dialog.Confirm{
		Title:       "¿Estás seguro?",
		Text:        "No podrás revertir esta acción",
		Kind:        dialog.Warning,
		AcceptLabel: "Sí, borrar",
		CancelLabel: "Cancelar",
	})

	for _, want := range []string{"¿Estás seguro?", "No podrás revertir", "Sí, borrar [enter]", "Cancelar [esc]"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}

func TestConfirmRenderAcknowledgeOnly(t *testing.T) {
	v := NewConfirmView()
	out := v.Render(dialog.Confirm{Title: "¡Pedido Enviado!", Kind: dialog.Success})

	if !strings.Contains(out, "OK [enter]") {
		t.Error("missing accept label should default to OK")
	}
	if strings.Contains(out, "[esc]") {
		t.Error("acknowledge-only dialog should not render a cancel action")
	}
}

func TestToastRender(t *testing.T) {
	v := NewToastView()

	out := v.Render(dialog.NewToast(dialog.Success, "Agregado al carrito"), 80)
	if !strings.Contains(out, "Agregado al carrito") {
		t.Error("toast should render its title")
	}

	if got := v.Render(nil, 80); got != "" {
		t.Errorf("nil toast should render empty, got %q", got)
	}
}

func TestRolePickerRender(t *testing.T) {
	v := NewRolePickerView()
	out := v.Render(RolePickerState{Selected: 1})

	for _, want := range []string{"Bienvenido a Pizzarten", "Visitante", "Cliente Registrado", "Administrador"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
	if !strings.Contains(out, "▸ Cliente Registrado") {
		t.Error("selected option should carry the marker")
	}
}

func TestProductFormRender(t *testing.T) {
	v := NewProductFormView()
	out := v.Render(ProductFormState{NameInput: "<name>", PriceInput: "<price>"})

	for _, want := range []string{"Nueva Pizza", "<name>", "<price>", "[enter]", "[esc]"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}

func TestHelpBarRoleHints(t *testing.T) {
	v := NewHelpBarView()

	visitor := v.Render(HelpBarState{Page: PageHome, Role: "visitor"})
	if !strings.Contains(visitor, "acceder") {
		t.Error("visitor help bar should hint login")
	}

	admin := v.Render(HelpBarState{Page: PageHome, Role: "admin"})
	for _, want := range []string{"nueva", "eliminar", "reset", "salir"} {
		if !strings.Contains(admin, want) {
			t.Errorf("admin help bar missing %q", want)
		}
	}
}

func TestFooterRender(t *testing.T) {
	v := NewFooterView()

	out := v.Render("© 2024 Pizzarten", 80)
	if !strings.Contains(out, "© 2024 Pizzarten") {
		t.Error("footer should render the text")
	}
	if got := v.Render("", 80); got != "" {
		t.Errorf("empty footer text should render empty, got %q", got)
	}
}
