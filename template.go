package peblgen

// StaticTemplate is the opening fragment of the timesheet document.
// Rendered documents start with it byte for byte.
const StaticTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Timesheet - PEBLGen</title>`

// Default destinations for the timesheet and its backup copy.
const (
	DefaultOutputPath = "/c/Users/Christian Abulhwa/PEBLGen/timesheet.html"
	DefaultBackupPath = "/c/Users/Christian Abulhwa/PEBLGen/timesheet_backup.html"
)
