package ingparse

import (
	"errors"
	"testing"

	"github.com/cookline/ingparse/trace"
)

func TestTryParseIngredientScenarios(t *testing.T) {
	p := mustParser(t)

	t.Run("mixed fraction plus composite with modifier", func(t *testing.T) {
		ing, err := p.TryParseIngredient("1¼ cups / 155.5 grams flour, lightly sifted")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ing.Name != "flour" {
			t.Errorf("Name = %q, want %q", ing.Name, "flour")
		}
		if ing.Modifier != "lightly sifted" {
			t.Errorf("Modifier = %q, want %q", ing.Modifier, "lightly sifted")
		}
		if len(ing.Amounts) != 2 ||
			ing.Amounts[0] != (Amount{Unit: "cup", Value: 1.25}) ||
			ing.Amounts[1] != (Amount{Unit: "gram", Value: 155.5}) {
			t.Errorf("Amounts = %+v", ing.Amounts)
		}
	})

	t.Run("range", func(t *testing.T) {
		ing, err := p.TryParseIngredient("2-3 tablespoons olive oil")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ing.Name != "olive oil" {
			t.Errorf("Name = %q, want %q", ing.Name, "olive oil")
		}
		if ing.Modifier != "" {
			t.Errorf("Modifier = %q, want empty", ing.Modifier)
		}
		if len(ing.Amounts) != 1 || ing.Amounts[0].Unit != "tablespoon" ||
			ing.Amounts[0].Value != 2 || ing.Amounts[0].UpperValue == nil || *ing.Amounts[0].UpperValue != 3 {
			t.Errorf("Amounts = %+v", ing.Amounts)
		}
	})

	t.Run("size word reclassified into modifier", func(t *testing.T) {
		ing, err := p.TryParseIngredient("3 large eggs, beaten")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ing.Name != "eggs" {
			t.Errorf("Name = %q, want %q", ing.Name, "eggs")
		}
		if ing.Modifier != "large, beaten" {
			t.Errorf("Modifier = %q, want %q", ing.Modifier, "large, beaten")
		}
		if len(ing.Amounts) != 1 || ing.Amounts[0] != (Amount{Unit: "whole", Value: 3}) {
			t.Errorf("Amounts = %+v", ing.Amounts)
		}
	})

	t.Run("to taste with no amounts", func(t *testing.T) {
		ing, err := p.TryParseIngredient("salt, to taste")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ing.Name != "salt" {
			t.Errorf("Name = %q, want %q", ing.Name, "salt")
		}
		if ing.Modifier != "to taste" {
			t.Errorf("Modifier = %q, want %q", ing.Modifier, "to taste")
		}
		if len(ing.Amounts) != 0 {
			t.Errorf("Amounts = %+v, want none", ing.Amounts)
		}
	})

	t.Run("spelled cardinal with unit", func(t *testing.T) {
		ing, err := p.TryParseIngredient("one cup whole milk")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ing.Name != "whole milk" {
			t.Errorf("Name = %q, want %q", ing.Name, "whole milk")
		}
		if len(ing.Amounts) != 1 || ing.Amounts[0] != (Amount{Unit: "cup", Value: 1}) {
			t.Errorf("Amounts = %+v", ing.Amounts)
		}
	})
}

func TestTryParseIngredientEmptyInput(t *testing.T) {
	p := mustParser(t)
	_, err := p.TryParseIngredient("   \t  ")
	if !errors.Is(err, ErrInputEmpty) {
		t.Fatalf("expected ErrInputEmpty, got %v", err)
	}
}

func TestTryParseIngredientNoNameLeft(t *testing.T) {
	p := mustParser(t)
	_, err := p.TryParseIngredient("3 cups")
	if !errors.Is(err, ErrNameMissing) {
		t.Fatalf("expected ErrNameMissing, got %v", err)
	}
}

func TestTryParseIngredientNeverPanics(t *testing.T) {
	p := mustParser(t)
	inputs := []string{
		"", "   ", ",", "(", ")", "1/0 cup", "😀🍕 3 cups", "\x00\x01",
		"////", "a,b,c,d", strings_repeat("x", 2000),
	}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("TryParseIngredient(%q) panicked: %v", in, r)
				}
			}()
			_, _ = p.TryParseIngredient(in)
		}()
	}
}

func strings_repeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}

func TestNoLeadingOrTrailingWhitespaceInOutputs(t *testing.T) {
	p := mustParser(t)
	ing, err := p.TryParseIngredient("  2 cups   flour  ,   sifted  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ing.Name != "flour" {
		t.Errorf("Name = %q", ing.Name)
	}
	if ing.Modifier != "sifted" {
		t.Errorf("Modifier = %q", ing.Modifier)
	}
}

func TestParseWithTraceMatchesUntracedResult(t *testing.T) {
	p := mustParser(t)
	plain, err1 := p.TryParseIngredient("2 cups flour")
	traced, root, err2 := p.ParseWithTrace("2 cups flour")
	if err1 != err2 && (err1 == nil) != (err2 == nil) {
		t.Fatalf("errors differ: %v vs %v", err1, err2)
	}
	if plain.Name != traced.Name || len(plain.Amounts) != len(traced.Amounts) {
		t.Errorf("trace changed the parse result: %+v vs %+v", plain, traced)
	}
	if root == nil {
		t.Fatalf("expected a non-nil trace root")
	}
	if root.Label != "line" {
		t.Errorf("root.Label = %q, want %q", root.Label, "line")
	}
	if len(root.Children) == 0 {
		t.Fatalf("expected sub-productions to be recorded under the line node, got none")
	}
	var labels []string
	for _, c := range root.Children {
		labels = append(labels, c.Label)
	}
	wantLabels := map[string]bool{"amounts": false, "name": false, "modifier": false}
	for _, l := range labels {
		if _, ok := wantLabels[l]; ok {
			wantLabels[l] = true
		}
	}
	for label, found := range wantLabels {
		if !found {
			t.Errorf("expected a %q child of the line node, got children %v", label, labels)
		}
	}

	var amountsNode *trace.Node
	for _, c := range root.Children {
		if c.Label == "amounts" {
			amountsNode = c
		}
	}
	if amountsNode == nil || len(amountsNode.Children) == 0 {
		t.Errorf("expected the amounts node to have its own recorded sub-productions (amount, number, unit...)")
	}
}

func TestParseWithTraceZeroCostWhenDiscarded(t *testing.T) {
	p := mustParser(t)
	if _, err := p.TryParseIngredient("2 cups flour"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var sink *trace.Sink
	allocs := testing.AllocsPerRun(100, func() {
		exit := sink.Enter("line", 0)
		exit(1, trace.Ok, "")
	})
	if allocs != 0 {
		t.Errorf("Enter/exit on a nil sink allocated %v times per run, want 0", allocs)
	}
}
