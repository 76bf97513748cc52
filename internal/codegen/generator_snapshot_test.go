package codegen

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestMain ensures go-snaps checks for snapshots left over from a removed
// or renamed test, keeping the .snaps directory honest.
func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

var snapshotPrograms = map[string]string{
	"class_with_inheritance_and_interface": `
		interface Named {
			name: string;
		}
		class Animal implements Named {
			name: string = "animal";
			speak(): string { return this.name; }
		}
		class Dog extends Animal {
			bark(): void { console.log(this.speak()); }
		}
	`,
	"function_with_control_flow": `
		function classify(x: number): string {
			if (x < 0) {
				return "negative";
			} else if (x === 0) {
				return "zero";
			}
			return "positive";
		}
	`,
	"module_imports_and_exports": `
		import { helper } from "./util";
		export function run(): void {
			helper();
		}
		export default run;
	`,
	"arrow_functions_and_array_methods": `
		const nums = [1, 2, 3];
		const doubled = nums.map((n: number): number => n * 2);
		const total = doubled.reduce((acc: number, n: number): number => acc + n, 0);
	`,
	"generic_and_union_type_erasure": `
		type ID = number | string;
		function identify(value: ID): void {
			console.log(value);
		}
		let items: Array<number> = [1, 2, 3];
	`,
}

func TestGeneratorSnapshots(t *testing.T) {
	for name, src := range snapshotPrograms {
		t.Run(name, func(t *testing.T) {
			out := generate(t, src)
			snaps.MatchSnapshot(t, name, out)
		})
	}
}
