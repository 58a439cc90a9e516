/*
Package shrdlite is a natural-language-directed block-world planner in the
tradition of SHRDLU.

Given a declarative English utterance and a world consisting of stacks of
geometric objects and a robot arm, shrdlite derives a goal formula (a
disjunction of conjunctions of relational literals) and plans a concrete
sequence of arm primitives — left, right, pick, drop — that drives the
world into any state satisfying the formula. Package structure is as
follows:

■ world: shared world state, the seven spatial relation predicates and the
physical feasibility rules.

■ dnf: literals, conjunctions and disjunctive-normal-form formulas, plus
the "dnf " direct-formula escape hatch grammar.

■ grammar: the minimal utterance parser.

■ interp: the semantic interpreter — entity/location resolution, DNF
construction for commands, and ambiguity resolution.

■ goaltree: the arena-owned decomposition of a DNF formula into executable
sub-goals.

■ search: the generic A* engine plus the two nested searches (low-level
over arm primitives, high-level over the goal tree).

■ session: the driver-owned conversational state machine.

■ config: compiled-in world presets and their example utterances.

The base package contains data types used throughout all the other
packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package shrdlite
