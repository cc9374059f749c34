/*
Package operation replays corex scripts against fresh containers.

	+---------------+      +-------------+      +-----------+
	| config.Script | ---> |   Execute   | ---> |  Result   |
	+---------------+      +------+------+      +-----------+
	                              |
	                 +------------+------------+
	                 |                         |
	          +------+------+          +-------+-------+
	          |  dynstring  |          | dynarray[T]   |
	          +-------------+          +---------------+

🎯 Purpose:
- Builds the container a script describes (string, or array of int,
  float, string or bool)
- Applies each step and records its output and error kind
- Compares outputs, error kinds and the final value with expectations

🔄 Flow:
1. Execute tags the run with a fresh run id
2. Each step is dispatched by op name to the container
3. Container errors (out of range, not found, ...) are recorded as data
4. Malformed steps (unknown op, wrong arg count, bad arg) abort the run
5. Runner executes many scripts, optionally in parallel

⚡ Step outputs:
- queries render their answer ("6", "true", "H")
- mutations render nothing
- concat renders the new array, leaving the script's array untouched

🔍 Example:

	res, err := operation.Execute(ctx, script)
	if err != nil {
		return err // script itself is malformed
	}
	if !res.Passed() {
		fmt.Println(res.Failures)
	}
*/
package operation
