package extraction

// documentStopWords is generic resume and job-description vocabulary
// that survives the heuristic stages but never names a skill. Tokens
// the lexicon recognizes bypass this list entirely.
var documentStopWords = map[string]bool{
	"ability": true, "about": true, "across": true, "also": true,
	"applicant": true, "applicants": true, "apply": true,
	"background": true, "benefits": true, "best": true, "bonus": true,
	"build": true, "building": true, "built": true, "business": true,
	"candidate": true, "candidates": true, "career": true,
	"college": true, "communication": true, "company": true,
	"create": true, "created": true, "creating": true,
	"degree": true, "description": true, "design": true, "designed": true,
	"develop": true, "developed": true, "developer": true,
	"developers": true, "developing": true, "development": true,
	"e.g": true, "education": true, "employee": true, "employees": true,
	"engineer": true, "engineering": true, "engineers": true,
	"entry": true, "environment": true, "equivalent": true,
	"excellent": true, "experience": true, "experienced": true,
	"expert": true, "familiar": true, "field": true,
	"great": true, "growth": true, "hire": true, "hiring": true,
	"i.e": true, "ideal": true, "include": true, "includes": true,
	"including": true, "intern": true, "internship": true,
	"job": true, "join": true, "junior": true, "knowledge": true,
	"lead": true, "leading": true, "learn": true, "learning": true,
	"level": true, "looking": true, "maintain": true, "maintained": true,
	"manage": true, "managed": true, "management": true, "manager": true,
	"minimum": true, "month": true, "months": true, "must": true,
	"need": true, "needed": true, "needs": true, "new": true,
	"offer": true, "opportunity": true, "organization": true,
	"plus": true, "position": true, "preferred": true, "principal": true,
	"product": true, "production": true, "proficiency": true,
	"proficient": true, "project": true, "projects": true,
	"quality": true, "related": true, "require": true, "required": true,
	"requirement": true, "requirements": true, "responsibilities": true,
	"responsibility": true, "responsible": true, "resume": true,
	"role": true, "roles": true, "salary": true, "seeking": true,
	"senior": true, "skill": true, "skills": true, "software": true,
	"solution": true, "solutions": true, "staff": true, "strong": true,
	"summary": true, "support": true, "system": true, "systems": true,
	"team": true, "teams": true, "technical": true, "technologies": true,
	"technology": true, "title": true, "understanding": true,
	"university": true, "using": true, "work": true, "worked": true,
	"working": true, "year": true, "years": true,
}
