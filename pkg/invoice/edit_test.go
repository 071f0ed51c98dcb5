// pkg/invoice/edit_test.go

package invoice

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestItemEditsDoNotAlias(t *testing.T) {
	base := New(now)
	base = Apply(base, AddItem())

	updated := Apply(base, UpdateItem(0, func(it Item) Item {
		it.Price = 5
		return it
	}))
	removed := Apply(base, RemoveItem(0))

	if base.Items[0].Price != 100 {
		t.Errorf("UpdateItem changed the source record: price = %v", base.Items[0].Price)
	}
	if updated.Items[0].Price != 5 {
		t.Errorf("updated price = %v, want 5", updated.Items[0].Price)
	}
	if len(base.Items) != 2 || len(removed.Items) != 1 {
		t.Fatalf("item counts: base %d, removed %d", len(base.Items), len(removed.Items))
	}
	if removed.Items[0].Description != "Item 2" {
		t.Errorf("remaining item = %q, want Item 2", removed.Items[0].Description)
	}
}

func TestAddItemNaming(t *testing.T) {
	r := Apply(Record{}, AddItem(), AddItem(), AddItem())
	want := []Item{
		{Description: "Item 1", Quantity: 1},
		{Description: "Item 2", Quantity: 1},
		{Description: "Item 3", Quantity: 1},
	}
	if d := cmp.Diff(want, r.Items); d != "" {
		t.Errorf("items mismatch (-want +got):\n%s", d)
	}
}

func TestItemEditOutOfRange(t *testing.T) {
	base := New(now)
	for _, e := range []Edit{RemoveItem(3), RemoveItem(-1), UpdateItem(9, func(Item) Item { return Item{} })} {
		got := e(base)
		if d := cmp.Diff(base, got, cmp.AllowUnexported(Amount{})); d != "" {
			t.Errorf("out of range edit changed the record (-want +got):\n%s", d)
		}
	}
}

func TestToggles(t *testing.T) {
	r := Apply(New(now), EnableTax(), EnableDiscount(), EnableShipping())
	for name, a := range map[string]Amount{"tax": r.TaxPercent, "discount": r.DiscountPercent, "shipping": r.ShippingAmount} {
		if v, ok := a.Get(); !ok || v != DefaultToggleValue {
			t.Errorf("%s after enable = %v, want %v", name, a, DefaultToggleValue)
		}
	}

	r = Apply(r, SetTax(Some(0)), EnableTax())
	if v, ok := r.TaxPercent.Get(); !ok || v != 0 {
		t.Errorf("EnableTax overwrote a present value: %v", r.TaxPercent)
	}

	r = Apply(r, DisableTax(), DisableDiscount(), DisableShipping())
	if r.TaxPercent.IsSet() || r.DiscountPercent.IsSet() || r.ShippingAmount.IsSet() {
		t.Errorf("amounts still present after disable: %v %v %v", r.TaxPercent, r.DiscountPercent, r.ShippingAmount)
	}
}

func TestEditorVersions(t *testing.T) {
	ed := NewEditor(New(now))
	first := ed.Snapshot()
	if first.Version != 1 {
		t.Fatalf("initial version = %d, want 1", first.Version)
	}

	second := ed.Apply(SetInvoiceNumber("0042"), SetParties("Acme", "Globex"))
	third := ed.Apply(UpdateItem(0, func(it Item) Item {
		it.Quantity = 3
		return it
	}))

	if second.Version != 2 || third.Version != 3 {
		t.Errorf("versions = %d, %d, want 2, 3", second.Version, third.Version)
	}
	if first.Record.InvoiceNumber != "" {
		t.Errorf("first snapshot changed: invoice number %q", first.Record.InvoiceNumber)
	}
	if second.Record.Items[0].Quantity != 1 {
		t.Errorf("second snapshot changed: quantity %v", second.Record.Items[0].Quantity)
	}
	if got := ed.Snapshot(); got.Version != 3 || got.Record.Items[0].Quantity != 3 || got.Record.To != "Globex" {
		t.Errorf("current snapshot = %+v", got)
	}

	// Mutating a handed out snapshot must not leak into the editor.
	third.Record.Items[0].Quantity = 99
	if ed.Snapshot().Record.Items[0].Quantity != 3 {
		t.Error("snapshot shares items with the editor")
	}
}

func TestSignatureAndLogoEdits(t *testing.T) {
	r := Apply(New(now),
		SetLogo("https://example.com/logo.png"),
		SetLogoPosition(LogoRight),
		SetSignature("https://example.com/sig.png", "Mikasa"),
	)
	if r.Logo == "" || r.LogoPosition != LogoRight || r.SignatureImage == "" || r.SignatureLabel != "Mikasa" {
		t.Fatalf("edits not applied: %+v", r)
	}

	r = Apply(r, ClearLogo(), ClearSignature())
	if r.Logo != "" || r.SignatureImage != "" {
		t.Errorf("clear edits not applied: logo %q signature %q", r.Logo, r.SignatureImage)
	}
	if r.SignatureLabel != "Mikasa" {
		t.Errorf("ClearSignature dropped the label")
	}
}
