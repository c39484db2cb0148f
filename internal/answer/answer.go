// Package answer holds the SQL answer submitted to the issued webhook.
package answer

// FinalQuery ranks every employee by age within their department and
// reports how many colleagues in the same department are younger.
const FinalQuery = "WITH EmployeeAgeRank AS (SELECT EMP_ID, RANK() OVER(PARTITION BY DEPARTMENT_ID ORDER BY DOB DESC) as age_rank FROM EMPLOYEE) SELECT e.EMP_ID, e.FIRST_NAME, e.LAST_NAME, d.DEPARTMENT_NAME, er.age_rank - 1 AS YOUNGER_EMPLOYEES_COUNT FROM EMPLOYEE e JOIN DEPARTMENT d ON e.DEPARTMENT_ID = d.DEPARTMENT_ID JOIN EmployeeAgeRank er ON e.EMP_ID = er.EMP_ID ORDER BY e.EMP_ID DESC;"

// Compute returns the answer to submit. It is always FinalQuery.
func Compute() string {
	return FinalQuery
}
