// export-fixture runs assertion sequences against the exports of a lazily
// initialized module and prints a report.
//
// Without arguments it runs the initializer sequence once:
//
//	export-fixture
//
// Output:
//
//	PASS foo() == "foo"
//	PASS getAnotherCount() == 1
//	PASS getCount() == 10
//	PASS bar() == "bar"
//	PASS getAnotherCount() == 1
//	PASS getCount() == 10
//	PASS initializer 6/6
//
// Scripts are txtar archives with a "steps" file, one `<export>() == <literal>`
// per line:
//
//	export-fixture -script testdata/reordered.txtar -runs 4 -parallel 2
//
// Each run gets a fresh module, so repeated runs must agree. The exit status
// is 1 when any assertion fails and 2 on usage or configuration errors.
package main
