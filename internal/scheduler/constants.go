package scheduler

const LogMsgTickSkipped = "Worker pool busy, scheduled run skipped"
