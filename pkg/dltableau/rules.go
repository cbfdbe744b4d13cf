package dltableau

// Rule is one expansion rule of the calculus. Every rule takes the
// current branch and returns:
//
//   - the (possibly mutated in place) interpretation
//   - true if the rule discovered an inconsistency (the clash rule only)
//   - true if the rule fired; the clash rule's sorting of new formulas
//     into their partitions is not reported as applied
//   - zero or more sibling branches to push onto the driver's
//     alternatives stack, for rules that split the search
//
// Deterministic rules mutate their argument and return it unchanged as
// the first result, with a nil branch slice. Non-deterministic rules
// clone the argument with Interpretation.Clone for each sibling branch
// before diverging it from the branch being mutated in place.
type Rule func(*Interpretation) (updated *Interpretation, clash bool, applied bool, alternatives []*Interpretation)

// defaultRuleOrder is the fixed priority order the search driver applies
// rules in. Rule order is part of the calculus, not an optimization: it
// determines which non-deterministic choice is explored first, and
// hence which branch order closed branches get popped in.
var defaultRuleOrder = []Rule{
	clashRule,
	doubleNegRule,
	conjunctionRule,
	roleRule2,
	negatedConjunctionRule,
	localDescriptionRule1,
	localDescriptionRule2,
	localDescriptionRule3,
	localDescriptionCutRule,
	globalDescriptionRule1,
	globalDescriptionRule2,
	globalDescriptionRule3,
	globalDescriptionCutRule,
	roleRule1,
}

// defaultRuleNames mirrors defaultRuleOrder index-for-index, for
// debug logging only.
var defaultRuleNames = []string{
	"clash",
	"double_neg",
	"conjunction",
	"role_rule_2",
	"negated_conjunction",
	"local_description_rule_1",
	"local_description_rule_2",
	"local_description_rule_3",
	"local_description_cut_rule",
	"global_description_rule_1",
	"global_description_rule_2",
	"global_description_rule_3",
	"global_description_cut_rule",
	"role_rule_1",
}
