package combinator

import (
	"reflect"
	"testing"

	"github.com/npillmayer/ccg/category"
	"github.com/npillmayer/ccg/deps"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func productions(reg *category.Registry, l, r string) []RuleProduction {
	return GetRules(reg.MustIntern(l), reg.MustIntern(r), Standard())
}

func find(prods []RuleProduction, t RuleType) (RuleProduction, bool) {
	for _, p := range prods {
		if p.Type == t {
			return p, true
		}
	}
	return RuleProduction{}, false
}

func TestApplication(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.combinator")
	defer teardown()
	//
	reg := category.NewRegistry()
	p, ok := find(productions(reg, `S[dcl]/NP`, "NP"), FA)
	if !ok {
		t.Fatalf("Expected S[dcl]/NP NP to combine with FA")
	}
	if p.Result != reg.MustIntern("S[dcl]") || !p.HeadIsLeft {
		t.Errorf("Expected FA to result in S[dcl], head left; is %s, %v", p.Result, p.HeadIsLeft)
	}
	p, ok = find(productions(reg, "NP", `NP\NP`), BA)
	if !ok {
		t.Fatalf("Expected NP NP\\NP to combine with BA")
	}
	if p.Result != reg.MustIntern("NP") || p.HeadIsLeft {
		t.Errorf("Expected BA to result in NP, head right; is %s, %v", p.Result, p.HeadIsLeft)
	}
	p, ok = find(productions(reg, `S[pss]\NP`, `(S[X]\NP)\(S[X]\NP)`), BA)
	if !ok || p.Result != reg.MustIntern(`S[pss]\NP`) {
		t.Errorf("Expected modifier to keep the feature of its argument, have %v", p.Result)
	}
	p, ok = find(productions(reg, `S[X]/S[X]`, `S[dcl]`), FA)
	if !ok || p.Result != reg.MustIntern(`S[dcl]`) {
		t.Errorf("Expected wildcard feature to be substituted, have %v", p.Result)
	}
	p, ok = find(productions(reg, `NP`, `S[dcl]\NP`), BA)
	if !ok || p.Result != reg.MustIntern(`S[dcl]`) || p.HeadIsLeft {
		t.Errorf("Expected NP S[dcl]\\NP to result in S[dcl] headed by the verb")
	}
	p, ok = find(productions(reg, `NP[nb]`, `S[dcl]\NP`), BA)
	if !ok {
		t.Errorf("Expected [nb] to be erased before rule lookup")
	}
}

func TestTypeRaisedHeads(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.combinator")
	defer teardown()
	//
	reg := category.NewRegistry()
	p, ok := find(productions(reg, `S/(S\NP)`, `S\NP`), FA)
	if !ok || p.HeadIsLeft {
		t.Errorf("Expected type-raised functor to defer head to its argument")
	}
	p, ok = find(productions(reg, `NP`, `S\(S/NP)`), BA)
	if ok {
		t.Errorf("Did not expect NP to match S/NP")
	}
	p, ok = find(productions(reg, `S/NP`, `S\(S/NP)`), BA)
	if !ok || !p.HeadIsLeft {
		t.Errorf("Expected backward type-raised functor to defer head to the left")
	}
}

func TestComposition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.combinator")
	defer teardown()
	//
	reg := category.NewRegistry()
	tests := []struct {
		l, r   string
		rule   RuleType
		result string // "" if rule must not apply
	}{
		{`S/(S\NP)`, `(S\NP)/NP`, FC, `S/NP`},
		{`(S\NP)/(S\NP)`, `(S\NP)/NP`, FC, `(S\NP)/NP`},
		{`(S\NP)/NP`, `(S\NP)\(S\NP)`, BX, `(S\NP)/NP`},
		{`(S[dcl]\NP)/NP`, `S[X]\S[X]`, BX, ""},
		{`NP/N`, `NP\NP`, BX, ""},
		{`S/(S\NP)`, `((S\NP)/PP)/NP`, GFC, `(S/PP)/NP`},
		{`((S\NP)/PP)/NP`, `(S\NP)\(S\NP)`, GBX, `((S\NP)/PP)/NP`},
		{`((N/N)/PP)/NP`, `N\N`, GBX, ""},
		{"conj", `S[dcl]\NP`, Conj, `(S[dcl]\NP)\(S[dcl]\NP)`},
		{",", "NP", Conj, `NP\NP`},
		{"conj", ",", Conj, ""},
		{"conj", `S/(S\NP)`, Conj, ""},
		{"NP", ".", RP, "NP"},
		{",", "NP", LP, "NP"},
		{",", ".", LP, ""},
	}
	for _, test := range tests {
		p, ok := find(productions(reg, test.l, test.r), test.rule)
		if test.result == "" {
			if ok {
				t.Errorf("Did not expect %s %s to combine with %s", test.l, test.r, test.rule)
			}
			continue
		}
		if !ok {
			t.Errorf("Expected %s %s to combine with %s", test.l, test.r, test.rule)
		} else if p.Result.String() != test.result {
			t.Errorf("Expected %s %s %s to be %s, is %s", test.l, test.r, test.rule,
				test.result, p.Result)
		}
	}
}

func TestGetRulesIsStable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.combinator")
	defer teardown()
	//
	reg := category.NewRegistry()
	cats := []string{"NP", `S[dcl]\NP`, `(S[dcl]\NP)/NP`, ",", "conj", `NP\NP`, `S/(S\NP)`}
	for _, l := range cats {
		for _, r := range cats {
			a := productions(reg, l, r)
			b := productions(reg, l, r)
			if !reflect.DeepEqual(a, b) {
				t.Errorf("Expected productions for %s %s to be stable", l, r)
			}
		}
	}
	cache := NewCache(Standard())
	l, r := reg.MustIntern(`(S[dcl]\NP)/NP`), reg.MustIntern("NP")
	first := cache.Rules(l, r)
	second := cache.Rules(l, r)
	if len(first) != 1 || !reflect.DeepEqual(first, second) {
		t.Errorf("Expected cache to return a single FA production twice, have %v", second)
	}
	if n, hits := cache.Stats(); n != 1 || hits != 1 {
		t.Errorf("Expected 1 cached pair and 1 hit, have %d and %d", n, hits)
	}
}

func TestSpecialCombinator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.combinator")
	defer teardown()
	//
	reg := category.NewRegistry()
	special := NewSpecial(reg.MustIntern("NP"), reg.MustIntern(","), reg.MustIntern(`S/S`), true)
	rules := append(Standard(), special)
	prods := GetRules(reg.MustIntern("NP[nb]"), reg.MustIntern(","), rules)
	p, ok := find(prods, Special)
	if !ok || p.Result.String() != `S/S` || !p.HeadIsLeft {
		t.Fatalf("Expected special rule NP , → S/S, have %v", prods)
	}
	var resolved []deps.Dependency
	s := p.Combinator.ApplyDependencies(deps.Leaf(0, reg.MustIntern("NP")),
		deps.Leaf(1, reg.MustIntern(",")), &resolved)
	if s.ArbitraryHead() != 0 || len(resolved) != 0 {
		t.Errorf("Expected head 0 and no dependencies, have %d and %v", s.ArbitraryHead(), resolved)
	}
}

func TestRuleClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.combinator")
	defer teardown()
	//
	reg := category.NewRegistry()
	np, mod := reg.MustIntern("NP"), reg.MustIntern(`NP\NP`)
	if ClassOf(BA, np, mod) != ClassBAMod {
		t.Errorf("Expected application of a modifier to be of class BA-MOD")
	}
	if ClassOf(BA, np, reg.MustIntern(`S\NP`)) != ClassBA {
		t.Errorf("Expected plain application to be of class BA")
	}
	if ClassOf(ForwardTypeRaise, np, nil) != ClassForwardRaise {
		t.Errorf("Expected forward type-raising class")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected unknown rule type to panic")
		}
	}()
	ClassOf(RuleType(99), np, np)
}

func TestUnaryRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.combinator")
	defer teardown()
	//
	reg := category.NewRegistry()
	rules := NewUnaryRules()
	tr := rules.Add(reg.MustIntern("NP"), reg.MustIntern(`S/(S\NP)`), "")
	tc := rules.Add(reg.MustIntern("N"), reg.MustIntern("NP"), "lambda x.x")
	if tr.RuleType() != ForwardTypeRaise || tc.RuleType() != TypeChange {
		t.Errorf("Expected rule types FTR and UNARY, have %s and %s", tr.RuleType(), tc.RuleType())
	}
	if us := rules.For(reg.MustIntern("NP[nb]")); len(us) != 1 || us[0] != tr {
		t.Errorf("Expected NP[nb] to use rules for NP, have %v", us)
	}
	if rules.ByID(1) != tc || rules.Len() != 2 {
		t.Errorf("Expected rules to be numbered in insertion order")
	}
	text, err := tc.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != "N\tNP\t\"lambda x.x\"" {
		t.Errorf("Unexpected serialization %q", text)
	}
	s := tr.ApplyDependencies(deps.Leaf(3, reg.MustIntern("NP")))
	if s.ArbitraryHead() != 3 {
		t.Errorf("Expected type-raising to keep the head, is %d", s.ArbitraryHead())
	}
}
